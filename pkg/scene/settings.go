package scene

import (
	"fmt"

	"github.com/taigrr/raycaster/pkg/math3d"
)

// Settings is the full render configuration. A render pass treats it as an
// immutable snapshot.
type Settings struct {
	EyePoint        math3d.Point `json:"eyePoint"`
	Light           Light        `json:"light"`
	Ambience        Color        `json:"ambience"`
	BackgroundColor Color        `json:"backgroundColor"`
	Frame           Frame        `json:"frame"`
}

// DefaultSettings returns the configuration a new scene starts with.
func DefaultSettings() Settings {
	return Settings{
		EyePoint: math3d.P3(0, 0, -14),
		Light: Light{
			Position:  math3d.P3(-100, 100, -100),
			Color:     White,
			Intensity: IntensityHigh,
		},
		Ambience:        White,
		BackgroundColor: White,
		Frame: Frame{
			View:        View{MinX: -10, MaxX: 10, MinY: -7.5, MaxY: 7.5, ZPlane: 0},
			Width:       512,
			Height:      384,
			AspectRatio: AspectFourThree,
		},
	}
}

// Validate reports settings a render pass cannot use.
func (s Settings) Validate() error {
	if !s.EyePoint.IsFinite() {
		return fmt.Errorf("%w: eye point %v is not finite", ErrInvalid, s.EyePoint)
	}
	if !s.Light.Position.IsFinite() {
		return fmt.Errorf("%w: light position %v is not finite", ErrInvalid, s.Light.Position)
	}
	if s.Light.Intensity < IntensityLow || s.Light.Intensity > IntensityHigh {
		return fmt.Errorf("%w: light intensity %d", ErrInvalid, int(s.Light.Intensity))
	}
	if err := s.Frame.Validate(); err != nil {
		return err
	}
	return nil
}
