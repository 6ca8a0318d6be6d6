package scene

import (
	"errors"
	"math"
	"testing"
)

func TestFrameValidate(t *testing.T) {
	good := DefaultSettings().Frame

	tests := []struct {
		name    string
		mutate  func(*Frame)
		wantErr bool
	}{
		{"default", func(*Frame) {}, false},
		{"minX == maxX", func(f *Frame) { f.View.MaxX = f.View.MinX }, true},
		{"minY > maxY", func(f *Frame) { f.View.MinY = 8 }, true},
		{"zero width", func(f *Frame) { f.Width = 0 }, true},
		{"negative height", func(f *Frame) { f.Height = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := good
			tc.mutate(&f)
			err := f.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestFrameStep(t *testing.T) {
	dx, dy := DefaultSettings().Frame.Step()
	if dx != 0.0390625 || dy != 0.0390625 {
		t.Errorf("Step = (%v, %v), want (0.0390625, 0.0390625)", dx, dy)
	}
}

func TestFrameAspectLock(t *testing.T) {
	f := DefaultSettings().Frame

	if got := f.WithWidth(640); got.Height != 480 {
		t.Errorf("4:3 width 640 -> height %d, want 480", got.Height)
	}
	if got := f.WithHeight(300); got.Width != 400 {
		t.Errorf("4:3 height 300 -> width %d, want 400", got.Width)
	}

	f.AspectRatio = AspectFreeform
	if got := f.WithWidth(640); got.Height != 384 {
		t.Errorf("freeform should keep height, got %d", got.Height)
	}
}

func TestFrameFit(t *testing.T) {
	f := Frame{
		View:        View{MinX: -8, MaxX: 8, MinY: 0, MaxY: 2, ZPlane: 0},
		Width:       320,
		Height:      100,
		AspectRatio: AspectSixteenNine,
	}
	got := f.Fit()
	if got.Height != 180 {
		t.Errorf("height = %d, want 180", got.Height)
	}
	if math.Abs(got.View.MinY+3.5) > 1e-9 || math.Abs(got.View.MaxY-5.5) > 1e-9 {
		t.Errorf("y range = [%v, %v], want [-3.5, 5.5]", got.View.MinY, got.View.MaxY)
	}

	f.AspectRatio = AspectFreeform
	if f.Fit() != f {
		t.Error("freeform frame should not change")
	}
}

func TestParseAspectRatio(t *testing.T) {
	for _, a := range []AspectRatio{AspectFreeform, AspectSquare, AspectFourThree, AspectSixteenNine} {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", a, err)
		}
		var back AspectRatio
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != a {
			t.Errorf("%q -> %v, want %v", text, back, a)
		}
	}
	if _, err := ParseAspectRatio("3:2"); err == nil {
		t.Error("expected error for unsupported ratio")
	}
}
