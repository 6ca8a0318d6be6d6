package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/raycaster/pkg/scene"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSpheresEquationCommand(t *testing.T) {
	out, err := execute(t, "spheres", "equation", "8 -10 100 90 0.2 0.2 0.6 0.4 0.8 0 0.05")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got, want := strings.TrimSpace(out), "(x - 8)² + (y + 10)² + (z - 100)² = 90²"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSpheresEquationDefaultScene(t *testing.T) {
	out, err := execute(t, "spheres", "equation")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(scene.DefaultSpheres()) {
		t.Errorf("got %d equations, want %d", len(lines), len(scene.DefaultSpheres()))
	}
}

func TestSpheresParseRejectsBadInput(t *testing.T) {
	if _, err := execute(t, "spheres", "parse", "1 2 3"); err == nil {
		t.Fatal("parse of 3 numbers succeeded")
	}
}

func TestSpheresRandomSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	f := &scene.File{Settings: scene.DefaultSettings(), Spheres: scene.DefaultSpheres()}
	if err := f.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	out, err := execute(t, "--scene", path, "spheres", "random", "-n", "3", "--seed", "7", "--save")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 3 {
		t.Errorf("printed %d spheres, want 3", n)
	}

	loaded, err := scene.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got, want := len(loaded.Spheres), len(scene.DefaultSpheres())+3; got != want {
		t.Errorf("saved %d spheres, want %d", got, want)
	}
}

func TestSpheresRandomSaveNeedsScene(t *testing.T) {
	if _, err := execute(t, "spheres", "random", "--save"); err == nil {
		t.Fatal("--save without --scene succeeded")
	}
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.ppm")
	if _, err := execute(t, "render", "--width", "32", "-o", path); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n32 24\n255\n")) {
		t.Errorf("header = %q", data[:min(len(data), 16)])
	}
}

func TestRenderCommandBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bmp")
	if _, err := execute(t, "render", "--width", "8", "-o", path); err == nil {
		t.Fatal("render to .bmp succeeded")
	}
}
