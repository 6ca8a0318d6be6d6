package scene

import (
	"encoding/json"
	"image/color"
	"testing"
)

func TestPixelValue(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"negative clamps to 0", -0.5, 0},
		{"zero", 0, 0},
		{"half rounds up", 0.5, 128},
		{"one", 1, 255},
		{"above one clamps to 255", 1.7, 255},
		{"small", 0.3138, 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PixelValue(tc.in); got != tc.want {
				t.Errorf("PixelValue(%v) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorPixelData(t *testing.T) {
	c := Color{R: 2.4, G: -1, B: 0.5, A: 1}
	want := color.RGBA{255, 0, 128, 255}
	if got := c.PixelData(); got != want {
		t.Errorf("PixelData = %v, want %v", got, want)
	}
}

func TestColorArithmetic(t *testing.T) {
	a := RGB(0.2, 0.4, 0.6)
	b := RGBA(0.5, 0.5, 2, 0)

	if got := a.Scale(2); got != RGB(0.4, 0.8, 1.2) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Mul(b); got != RGB(0.1, 0.2, 1.2) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Add(b); got.A != 1 {
		t.Errorf("Add should keep the receiver's alpha, got %v", got.A)
	}
	if got := b.Scale(3); got.A != 0 {
		t.Errorf("Scale should not touch alpha, got %v", got.A)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", White, false},
		{"#000000", RGB(0, 0, 0), false},
		{"white", White, false},
		{"0.2, 0.2, 0.6", RGB(0.2, 0.2, 0.6), false},
		{"1,0,1,0.5", RGBA(1, 0, 1, 0.5), false},
		{"1,0", Color{}, true},
		{"a,b,c", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(1, 0, 1).Hex(); got != "#ff00ff" {
		t.Errorf("Hex = %q", got)
	}
	if got := RGB(2, -1, 0).Hex(); got != "#ff0000" {
		t.Errorf("Hex should clamp, got %q", got)
	}
}

func TestColorUnmarshalJSON(t *testing.T) {
	var c Color
	if err := json.Unmarshal([]byte(`{"r":0.5,"g":0.25,"b":1}`), &c); err != nil {
		t.Fatal(err)
	}
	if c != RGB(0.5, 0.25, 1) {
		t.Errorf("object form = %v, alpha should default to 1", c)
	}

	if err := json.Unmarshal([]byte(`"#ffffff"`), &c); err != nil {
		t.Fatal(err)
	}
	if c != White {
		t.Errorf("string form = %v", c)
	}

	if err := json.Unmarshal([]byte(`"nope"`), &c); err == nil {
		t.Error("expected error for bad color string")
	}
}
