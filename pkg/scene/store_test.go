package scene

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	clock := time.Date(2017, 7, 7, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return st
}

func TestStoreAddKeepsOrder(t *testing.T) {
	st := newTestStore(t)
	defaults := DefaultSpheres()

	a, err := st.Add(defaults[0])
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Add(defaults[1])
	if err != nil {
		t.Fatal(err)
	}

	if a.ID == 0 || b.ID == 0 || a.ID == b.ID {
		t.Errorf("IDs should be distinct and nonzero: %d, %d", a.ID, b.ID)
	}
	if !a.CreatedAt.Before(b.CreatedAt) {
		t.Errorf("creation times out of order: %v, %v", a.CreatedAt, b.CreatedAt)
	}

	snap := st.Snapshot()
	if len(snap) != 2 || snap[0].ID != a.ID || snap[1].ID != b.ID {
		t.Errorf("snapshot order wrong: %v", snap)
	}
}

func TestStoreRejectsInvalid(t *testing.T) {
	st := newTestStore(t)
	bad := DefaultSpheres()[0]
	bad.Radius = 0

	if _, err := st.Add(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
	if st.Len() != 0 || st.Version() != 0 {
		t.Error("rejected add should not change the store")
	}
}

func TestStoreReplace(t *testing.T) {
	st := newTestStore(t)
	first, _ := st.Add(DefaultSpheres()[0])
	second, _ := st.Add(DefaultSpheres()[1])

	edited := first
	edited.Radius = 3
	got, err := st.Replace(first.ID, edited)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != first.ID || !got.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("replace should keep identity: %v", got)
	}

	snap := st.Snapshot()
	if snap[0].Radius != 3 || snap[1].ID != second.ID {
		t.Errorf("replace should keep position: %v", snap)
	}

	if _, err := st.Replace(99, edited); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreDelete(t *testing.T) {
	st := newTestStore(t)
	first, _ := st.Add(DefaultSpheres()[0])
	second, _ := st.Add(DefaultSpheres()[1])

	v := st.Version()
	if err := st.Delete(first.ID); err != nil {
		t.Fatal(err)
	}
	if st.Version() == v {
		t.Error("delete should bump the version")
	}
	if _, err := st.Get(first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if got, err := st.Get(second.ID); err != nil || got.ID != second.ID {
		t.Errorf("Get(second) = %v, %v", got, err)
	}
	if err := st.Delete(first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	st := newTestStore(t)
	_, _ = st.Add(DefaultSpheres()[0])

	snap := st.Snapshot()
	snap[0].Radius = 42

	if got := st.Snapshot()[0].Radius; got == 42 {
		t.Error("mutating a snapshot changed the store")
	}
}

func TestStoreConcurrentAdd(t *testing.T) {
	st := newTestStore(t)
	st.now = time.Now

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			_, _ = st.Add(DefaultSpheres()[0])
		})
	}
	wg.Wait()

	if st.Len() != 16 {
		t.Errorf("Len = %d, want 16", st.Len())
	}
	seen := map[ID]bool{}
	for _, s := range st.Snapshot() {
		if seen[s.ID] {
			t.Errorf("duplicate ID %d", s.ID)
		}
		seen[s.ID] = true
	}
}
