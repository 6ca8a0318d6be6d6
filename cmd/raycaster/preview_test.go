package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/taigrr/raycaster/pkg/scene"
)

func debugLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func TestRemoveNewestSphere(t *testing.T) {
	var buf bytes.Buffer
	defaults := scene.DefaultSpheres()
	store, err := scene.NewStore(defaults...)
	if err != nil {
		t.Fatal(err)
	}

	removeNewestSphere(debugLogger(&buf), store)
	spheres := store.Snapshot()
	if len(spheres) != len(defaults)-1 {
		t.Fatalf("got %d spheres, want %d", len(spheres), len(defaults)-1)
	}
	if spheres[0].Center != defaults[0].Center {
		t.Errorf("oldest sphere removed instead of newest")
	}
	if !strings.Contains(buf.String(), "removed sphere") {
		t.Errorf("log = %q, want a removal entry", buf.String())
	}
}

func TestRemoveNewestSphereEmpty(t *testing.T) {
	var buf bytes.Buffer
	store, err := scene.NewStore()
	if err != nil {
		t.Fatal(err)
	}
	version := store.Version()

	removeNewestSphere(debugLogger(&buf), store)
	if store.Version() != version {
		t.Error("empty store changed")
	}
	if buf.Len() != 0 {
		t.Errorf("log = %q, want nothing", buf.String())
	}
}

func TestAddRandomSphere(t *testing.T) {
	var buf bytes.Buffer
	store, err := scene.NewStore(scene.DefaultSpheres()...)
	if err != nil {
		t.Fatal(err)
	}
	before := store.Len()

	rng := rand.New(rand.NewPCG(1, 2))
	addRandomSphere(debugLogger(&buf), store, rng, scene.DefaultSettings())
	if store.Len() != before+1 {
		t.Errorf("got %d spheres, want %d", store.Len(), before+1)
	}
	if !strings.Contains(buf.String(), "added sphere") {
		t.Errorf("log = %q, want an add entry", buf.String())
	}
}
