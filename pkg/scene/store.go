package scene

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ErrNotFound is returned when a Store has no sphere with the requested ID.
var ErrNotFound = errors.New("scene: sphere not found")

// Store is an ordered collection of spheres keyed by ID. Spheres keep their
// creation order, which is also the order a render pass sees them in.
// A Store is safe for concurrent use; renders work on a Snapshot.
type Store struct {
	mu      sync.RWMutex
	spheres []Sphere
	nextID  ID
	version uint64
	now     func() time.Time
}

// NewStore creates a store holding the given spheres, in order.
func NewStore(spheres ...Sphere) (*Store, error) {
	st := &Store{now: time.Now}
	for _, s := range spheres {
		if _, err := st.Add(s); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// Add validates s, assigns it a fresh ID and creation time, and appends it.
// The stored sphere is returned.
func (st *Store) Add(s Sphere) (Sphere, error) {
	if err := s.Validate(); err != nil {
		return Sphere{}, fmt.Errorf("add sphere: %w", err)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.nextID++
	s.ID = st.nextID
	s.CreatedAt = st.now()
	st.spheres = append(st.spheres, s)
	st.version++
	return s, nil
}

// Get returns the sphere with the given ID.
func (st *Store) Get(id ID) (Sphere, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	i := st.indexOf(id)
	if i < 0 {
		return Sphere{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return st.spheres[i], nil
}

// Replace swaps the sphere with the given ID for s, keeping the original ID,
// creation time and position in the order.
func (st *Store) Replace(id ID, s Sphere) (Sphere, error) {
	if err := s.Validate(); err != nil {
		return Sphere{}, fmt.Errorf("replace sphere %d: %w", id, err)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	i := st.indexOf(id)
	if i < 0 {
		return Sphere{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	s.ID = id
	s.CreatedAt = st.spheres[i].CreatedAt
	st.spheres[i] = s
	st.version++
	return s, nil
}

// Delete removes the sphere with the given ID.
func (st *Store) Delete(id ID) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	i := st.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	st.spheres = slices.Delete(st.spheres, i, i+1)
	st.version++
	return nil
}

// Len returns the number of spheres.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.spheres)
}

// Snapshot returns a copy of the spheres in creation order.
func (st *Store) Snapshot() []Sphere {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return slices.Clone(st.spheres)
}

// Version increases on every change. Callers holding an image rendered at
// version v need to re-render once Version() != v.
func (st *Store) Version() uint64 {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.version
}

func (st *Store) indexOf(id ID) int {
	return slices.IndexFunc(st.spheres, func(s Sphere) bool { return s.ID == id })
}
