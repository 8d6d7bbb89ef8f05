// Package collision detects duplicate features and feature ID collisions while
// a feature blob is being built.
package collision

import (
	"fmt"

	"github.com/arloliu/geowire/errs"
)

// Tracker records the IDs and names added to a feature blob encoder.
//
// Two distinct names hashing to the same ID are tolerated: the collision flag is
// raised and the encoder must store the names payload so readers can tell the
// features apart. Two caller-provided IDs that are equal cannot be told apart
// and are rejected.
type Tracker struct {
	ids          map[uint64]struct{}
	names        map[string]struct{}
	order        []string
	count        int
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		ids:   make(map[uint64]struct{}),
		names: make(map[string]struct{}),
	}
}

// TrackID records a caller-provided feature ID.
//
// Returns errs.ErrHashCollision if id was already tracked.
func (t *Tracker) TrackID(id uint64) error {
	if _, exists := t.ids[id]; exists {
		return fmt.Errorf("%w: feature ID 0x%016x", errs.ErrHashCollision, id)
	}
	t.ids[id] = struct{}{}
	t.count++

	return nil
}

// TrackName records a feature name and its ID.
//
// Returns errs.ErrInvalidFeatureName for an empty name and errs.ErrFeatureExists
// if name was already tracked. A different name with the same id sets the
// collision flag instead of failing.
func (t *Tracker) TrackName(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidFeatureName
	}

	if _, exists := t.names[name]; exists {
		return fmt.Errorf("%w: %q", errs.ErrFeatureExists, name)
	}

	if _, exists := t.ids[id]; exists {
		t.hasCollision = true
	}

	t.ids[id] = struct{}{}
	t.names[name] = struct{}{}
	t.order = append(t.order, name)
	t.count++

	return nil
}

// HasCollision reports whether two tracked names share an ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in the order they were added.
func (t *Tracker) Names() []string {
	return t.order
}

// Count returns the number of tracked features.
func (t *Tracker) Count() int {
	return t.count
}

// Reset clears all tracked features and the collision flag, keeping capacity.
func (t *Tracker) Reset() {
	clear(t.ids)
	clear(t.names)
	t.order = t.order[:0]
	t.count = 0
	t.hasCollision = false
}
