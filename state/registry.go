package state

import (
	"fmt"

	"sport-tracker-api/models"
	"sport-tracker-api/types"
)

func validateFields(name, unit string, goal float64) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrValidation)
	}
	if types.GetUnitByName(unit) == nil {
		return fmt.Errorf("%w: unknown unit %q", ErrValidation, unit)
	}
	if goal < 0 {
		return fmt.Errorf("%w: negative goal", ErrValidation)
	}
	return nil
}

// Create registers a new activity with a fresh ID and the icon implied
// by its unit. Validation happens before anything is mutated.
func (e *Engine) Create(name, unit string, goal float64) (*models.Activity, error) {
	if err := validateFields(name, unit, goal); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	a := &models.Activity{
		ID:   NewID(),
		Name: name,
		Unit: unit,
		Icon: types.IconForUnit(unit),
		Goal: goal,
	}
	e.state.Activities[a.ID] = a
	e.state.Order = append(e.state.Order, a.ID)
	copied := *a
	return &copied, nil
}

// Update replaces every field of an activity except its ID. Either all
// fields are replaced or none are.
func (e *Engine) Update(id, name, unit string, goal float64) (*models.Activity, error) {
	if err := validateFields(name, unit, goal); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.state.Activities[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	a.Name = name
	a.Unit = unit
	a.Icon = types.IconForUnit(unit)
	a.Goal = goal
	copied := *a
	return &copied, nil
}

// Remove deletes an activity and purges its entries from every date
// bucket. Date buckets left empty are pruned.
func (e *Engine) Remove(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.state.Activities[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(e.state.Activities, id)
	for i, oid := range e.state.Order {
		if oid == id {
			e.state.Order = append(e.state.Order[:i], e.state.Order[i+1:]...)
			break
		}
	}
	e.purgeActivityLocked(id)
	return nil
}

// Get returns a copy of an activity.
func (e *Engine) Get(id string) (*models.Activity, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, ok := e.state.Activities[id]
	if !ok {
		return nil, false
	}
	copied := *a
	return &copied, true
}

// List returns all activities in insertion order. Order carries no
// meaning for aggregation but must be stable for display.
func (e *Engine) List() []*models.Activity {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.listLocked()
}

func (e *Engine) listLocked() []*models.Activity {
	out := make([]*models.Activity, 0, len(e.state.Order))
	for _, id := range e.state.Order {
		if a, ok := e.state.Activities[id]; ok {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out
}
