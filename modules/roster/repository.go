package roster

import "sync"

// MechanicRepository provides in-memory mechanic storage.
type MechanicRepository struct {
	mechanics map[string]*MechanicInfo
	order     []string
	mu        sync.RWMutex
}

// NewMechanicRepository creates a new mechanic repository.
func NewMechanicRepository() *MechanicRepository {
	return &MechanicRepository{
		mechanics: make(map[string]*MechanicInfo),
	}
}

// SeedDemoMechanics adds demo mechanics to the repository.
func (r *MechanicRepository) SeedDemoMechanics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	demo := []*MechanicInfo{
		{ID: "mech-1", Name: "Dana Cole", Specialty: "engine"},
		{ID: "mech-2", Name: "Sam Ortiz", Specialty: "transmission"},
		{ID: "mech-3", Name: "Lee Tanaka", Specialty: "electrical"},
	}

	for _, m := range demo {
		if _, found := r.mechanics[m.ID]; !found {
			r.order = append(r.order, m.ID)
		}
		r.mechanics[m.ID] = m
	}
}

// FindByID finds a mechanic by ID.
func (r *MechanicRepository) FindByID(mechanicID string) (*MechanicInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, found := r.mechanics[mechanicID]
	return m, found
}

// Exists checks if a mechanic exists.
func (r *MechanicRepository) Exists(mechanicID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, found := r.mechanics[mechanicID]
	return found
}

// All returns the active mechanics in insertion order. The grid renders
// one row per mechanic in exactly this order.
func (r *MechanicRepository) All() []MechanicInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]MechanicInfo, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.mechanics[id])
	}
	return result
}
