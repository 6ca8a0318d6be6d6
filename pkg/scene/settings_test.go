package scene

import (
	"math"
	"testing"

	"github.com/taigrr/raycaster/pkg/math3d"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.EyePoint != math3d.P3(0, 0, -14) {
		t.Errorf("eye = %v", s.EyePoint)
	}
	if s.Light.Position != math3d.P3(-100, 100, -100) || s.Light.Intensity != IntensityHigh {
		t.Errorf("light = %v", s.Light)
	}
	if s.Frame.Width != 512 || s.Frame.Height != 384 {
		t.Errorf("size = %dx%d", s.Frame.Width, s.Frame.Height)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	s.EyePoint.Z = math.Inf(-1)
	if err := s.Validate(); err == nil {
		t.Error("expected error for infinite eye point")
	}

	s = DefaultSettings()
	s.Light.Intensity = Intensity(7)
	if err := s.Validate(); err == nil {
		t.Error("expected error for unknown intensity")
	}

	s = DefaultSettings()
	s.Frame.Height = 0
	if err := s.Validate(); err == nil {
		t.Error("expected error for empty frame")
	}
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		in     Intensity
		factor float64
		name   string
	}{
		{IntensityLow, 0.5, "low"},
		{IntensityMedium, 1.0, "medium"},
		{IntensityHigh, 1.5, "high"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.in.Factor() != tc.factor {
				t.Errorf("Factor = %v, want %v", tc.in.Factor(), tc.factor)
			}
			if tc.in.String() != tc.name {
				t.Errorf("String = %q", tc.in.String())
			}
			got, err := ParseIntensity(tc.name)
			if err != nil || got != tc.in {
				t.Errorf("ParseIntensity(%q) = %v, %v", tc.name, got, err)
			}
		})
	}

	if _, err := ParseIntensity("blinding"); err == nil {
		t.Error("expected error for unknown intensity")
	}
}

func TestLightEffectiveColor(t *testing.T) {
	l := Light{Color: RGB(1, 0.5, 0), Intensity: IntensityHigh}
	if got := l.EffectiveColor(); got != RGB(1.5, 0.75, 0) {
		t.Errorf("EffectiveColor = %v", got)
	}
	l.Intensity = IntensityLow
	if got := l.EffectiveColor(); got != RGB(0.5, 0.25, 0) {
		t.Errorf("EffectiveColor = %v", got)
	}
}
