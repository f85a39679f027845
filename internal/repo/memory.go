package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/controlcar/backend/internal/domain"
)

// Memory is an in-memory store backing all four repo interfaces. It exists so
// service tests can exercise the business rules against real append-only
// history without a database. Each resource is exposed as a view (Vehicles,
// FuelLoads, ...) that satisfies the corresponding repo interface, mirroring
// how the Postgres repos share one connection pool.
// All methods are safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	vehicles map[uuid.UUID]domain.Vehicle
	fuel     map[uuid.UUID][]domain.FuelLoad
	oil      map[uuid.UUID][]domain.OilChange
	maint    map[uuid.UUID][]domain.MaintenanceRecord
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		vehicles: make(map[uuid.UUID]domain.Vehicle),
		fuel:     make(map[uuid.UUID][]domain.FuelLoad),
		oil:      make(map[uuid.UUID][]domain.OilChange),
		maint:    make(map[uuid.UUID][]domain.MaintenanceRecord),
	}
}

// Vehicles returns a VehicleRepo view of the store.
func (m *Memory) Vehicles() VehicleRepo { return memVehicleRepo{m} }

// FuelLoads returns a FuelLoadRepo view of the store.
func (m *Memory) FuelLoads() FuelLoadRepo { return memFuelLoadRepo{m} }

// OilChanges returns an OilChangeRepo view of the store.
func (m *Memory) OilChanges() OilChangeRepo { return memOilChangeRepo{m} }

// Maintenances returns a MaintenanceRepo view of the store.
func (m *Memory) Maintenances() MaintenanceRepo { return memMaintenanceRepo{m} }

// Compile-time checks: the views must stay interchangeable with the Postgres repos.
var (
	_ VehicleRepo     = memVehicleRepo{}
	_ FuelLoadRepo    = memFuelLoadRepo{}
	_ OilChangeRepo   = memOilChangeRepo{}
	_ MaintenanceRepo = memMaintenanceRepo{}
)

type memVehicleRepo struct{ m *Memory }

func (r memVehicleRepo) Create(_ context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	now := time.Now().UTC()
	v.ID = uuid.New()
	v.CreatedAt = now
	v.UpdatedAt = now
	r.m.vehicles[v.ID] = v
	return v, nil
}

func (r memVehicleRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Vehicle, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	v, ok := r.m.vehicles[id]
	if !ok {
		return domain.Vehicle{}, fmt.Errorf("repo.Memory.GetByID: %w", domain.ErrNotFound)
	}
	return v, nil
}

func (r memVehicleRepo) List(_ context.Context) ([]domain.Vehicle, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	vehicles := make([]domain.Vehicle, 0, len(r.m.vehicles))
	for _, v := range r.m.vehicles {
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

func (r memVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.vehicles[id]; !ok {
		return fmt.Errorf("repo.Memory.Delete: %w", domain.ErrNotFound)
	}
	delete(r.m.vehicles, id)
	delete(r.m.fuel, id)
	delete(r.m.oil, id)
	delete(r.m.maint, id)
	return nil
}

type memFuelLoadRepo struct{ m *Memory }

func (r memFuelLoadRepo) Create(_ context.Context, f domain.FuelLoad) (domain.FuelLoad, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	f.ID = uuid.New()
	f.CreatedAt = time.Now().UTC()
	r.m.fuel[f.VehicleID] = append(r.m.fuel[f.VehicleID], f)
	return f, nil
}

func (r memFuelLoadRepo) ListByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]domain.FuelLoad, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	loads := make([]domain.FuelLoad, len(r.m.fuel[vehicleID]))
	copy(loads, r.m.fuel[vehicleID])
	return loads, nil
}

type memOilChangeRepo struct{ m *Memory }

func (r memOilChangeRepo) Create(_ context.Context, oc domain.OilChange) (domain.OilChange, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	oc.ID = uuid.New()
	oc.CreatedAt = time.Now().UTC()
	r.m.oil[oc.VehicleID] = append(r.m.oil[oc.VehicleID], oc)
	return oc, nil
}

func (r memOilChangeRepo) ListByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]domain.OilChange, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	changes := make([]domain.OilChange, len(r.m.oil[vehicleID]))
	copy(changes, r.m.oil[vehicleID])
	return changes, nil
}

type memMaintenanceRepo struct{ m *Memory }

func (r memMaintenanceRepo) Create(_ context.Context, rec domain.MaintenanceRecord) (domain.MaintenanceRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	rec.ID = uuid.New()
	rec.CreatedAt = time.Now().UTC()
	r.m.maint[rec.VehicleID] = append(r.m.maint[rec.VehicleID], rec)
	return rec, nil
}

func (r memMaintenanceRepo) ListByVehicleID(_ context.Context, vehicleID uuid.UUID) ([]domain.MaintenanceRecord, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	records := make([]domain.MaintenanceRecord, len(r.m.maint[vehicleID]))
	copy(records, r.m.maint[vehicleID])
	return records, nil
}
