package domain

// Alert keys returned by the report service. Each key is present only when
// there is something to say about that concern.
const (
	AlertOilChange  = "oil_change"
	AlertEfficiency = "efficiency"
)

// Alerts maps an alert key to a human-readable message.
// A missing key means the concern needs no attention.
type Alerts map[string]string
