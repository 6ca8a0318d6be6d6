package scene

import (
	"fmt"
	"math"
	"strings"
)

// View is the rectangle on the plane z = ZPlane that the eye looks through.
type View struct {
	MinX   float64 `json:"minX"`
	MaxX   float64 `json:"maxX"`
	MinY   float64 `json:"minY"`
	MaxY   float64 `json:"maxY"`
	ZPlane float64 `json:"zPlane"`
}

// AspectRatio locks the frame's proportions while its size changes.
type AspectRatio int

const (
	AspectFreeform AspectRatio = iota
	AspectSquare
	AspectFourThree
	AspectSixteenNine
)

// Ratio returns width/height, or 0 for a freeform frame.
func (a AspectRatio) Ratio() float64 {
	switch a {
	case AspectSquare:
		return 1
	case AspectFourThree:
		return 4.0 / 3.0
	case AspectSixteenNine:
		return 16.0 / 9.0
	default:
		return 0
	}
}

func (a AspectRatio) String() string {
	switch a {
	case AspectFreeform:
		return "freeform"
	case AspectSquare:
		return "1:1"
	case AspectFourThree:
		return "4:3"
	case AspectSixteenNine:
		return "16:9"
	default:
		return fmt.Sprintf("AspectRatio(%d)", int(a))
	}
}

// ParseAspectRatio reads "freeform", "1:1", "4:3" or "16:9".
func ParseAspectRatio(s string) (AspectRatio, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "freeform", "free":
		return AspectFreeform, nil
	case "1:1", "square":
		return AspectSquare, nil
	case "4:3":
		return AspectFourThree, nil
	case "16:9":
		return AspectSixteenNine, nil
	}
	return 0, fmt.Errorf("%w: unknown aspect ratio %q", ErrInvalid, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a AspectRatio) MarshalText() ([]byte, error) {
	if a < AspectFreeform || a > AspectSixteenNine {
		return nil, fmt.Errorf("%w: aspect ratio %d", ErrInvalid, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AspectRatio) UnmarshalText(text []byte) error {
	v, err := ParseAspectRatio(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Frame maps the view rectangle onto a Width × Height pixel grid.
type Frame struct {
	View        View        `json:"view"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	AspectRatio AspectRatio `json:"aspectRatio"`
}

// Validate reports a frame that cannot be sampled.
func (f Frame) Validate() error {
	v := f.View
	for _, x := range []float64{v.MinX, v.MaxX, v.MinY, v.MaxY, v.ZPlane} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: frame view %+v is not finite", ErrInvalid, v)
		}
	}
	if v.MinX >= v.MaxX {
		return fmt.Errorf("%w: frame minX %g must be below maxX %g", ErrInvalid, v.MinX, v.MaxX)
	}
	if v.MinY >= v.MaxY {
		return fmt.Errorf("%w: frame minY %g must be below maxY %g", ErrInvalid, v.MinY, v.MaxY)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: frame size %dx%d must be positive", ErrInvalid, f.Width, f.Height)
	}
	return nil
}

// Step returns the distance between neighbouring samples on each axis.
func (f Frame) Step() (dx, dy float64) {
	return (f.View.MaxX - f.View.MinX) / float64(f.Width),
		(f.View.MaxY - f.View.MinY) / float64(f.Height)
}

// PixelCount is Width × Height.
func (f Frame) PixelCount() int {
	return f.Width * f.Height
}

// WithWidth sets the width; a locked aspect ratio drags the height along.
func (f Frame) WithWidth(w int) Frame {
	f.Width = w
	if r := f.AspectRatio.Ratio(); r > 0 {
		f.Height = max(1, int(math.Round(float64(w)/r)))
	}
	return f
}

// WithHeight sets the height; a locked aspect ratio drags the width along.
func (f Frame) WithHeight(h int) Frame {
	f.Height = h
	if r := f.AspectRatio.Ratio(); r > 0 {
		f.Width = max(1, int(math.Round(float64(h)*r)))
	}
	return f
}

// Fit reshapes a locked frame to its aspect ratio: the pixel height follows
// the width, and the view's y range follows its x range about the current
// vertical center. Freeform frames are returned unchanged.
func (f Frame) Fit() Frame {
	r := f.AspectRatio.Ratio()
	if r == 0 {
		return f
	}
	f = f.WithWidth(f.Width)
	cy := (f.View.MinY + f.View.MaxY) / 2
	half := (f.View.MaxX - f.View.MinX) / r / 2
	f.View.MinY = cy - half
	f.View.MaxY = cy + half
	return f
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame(x: [%g, %g], y: [%g, %g], z: %g, size: %dx%d, aspect: %s)",
		f.View.MinX, f.View.MaxX, f.View.MinY, f.View.MaxY, f.View.ZPlane, f.Width, f.Height, f.AspectRatio)
}
