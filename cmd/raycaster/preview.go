package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/raycaster/pkg/render"
	"github.com/taigrr/raycaster/pkg/scene"
)

const (
	lightStep = 20.0 // light movement per key press
	eyeStep   = 2.0  // eye movement per key press
	settleEps = 1e-3
)

var hudStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#3C3C50")).
	Padding(0, 1)

func newPreviewCmd(a *app) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive full-screen terminal preview",
		Long: `Render the scene into the terminal using half-block characters.

Controls:
  Arrows/WASD  - Move the light
  +/-          - Move the eye closer/farther
  N            - Add a random sphere
  X            - Remove the newest sphere
  R            - Reset light and eye
  Q/Esc        - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := a.scene.load()
			if err != nil {
				return a.fail("load scene: %w", err)
			}
			return runPreview(cmd.Context(), a, file, fps)
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 30, "target frames per second")
	a.scene.bindSettings(cmd)
	return cmd
}

// follower eases a value toward a target with a critically damped spring.
type follower struct {
	Position float64
	Target   float64
	velocity float64
	spring   harmonica.Spring
}

func newFollower(v float64, fps int) follower {
	return follower{
		Position: v,
		Target:   v,
		// Frequency 6.0 = quick, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances one frame and reports whether the value moved.
func (f *follower) Update() bool {
	if f.Settled() {
		f.Position, f.velocity = f.Target, 0
		return false
	}
	f.Position, f.velocity = f.spring.Update(f.Position, f.velocity, f.Target)
	return true
}

func (f *follower) Settled() bool {
	return math.Abs(f.Position-f.Target) < settleEps && math.Abs(f.velocity) < settleEps
}

// previewState is shared between the event goroutine and the render loop.
type previewState struct {
	mu             sync.Mutex
	lightX, lightY follower
	eyeZ           follower
	resized        bool
	width, height  int
}

func (s *previewState) reset(settings scene.Settings) {
	s.lightX.Target = settings.Light.Position.X
	s.lightY.Target = settings.Light.Position.Y
	s.eyeZ.Target = settings.EyePoint.Z
}

// addRandomSphere adds a sphere visible from settings' eye point.
func addRandomSphere(logger *log.Logger, store *scene.Store, rng *rand.Rand, settings scene.Settings) {
	s := scene.RandomSphere(rng, store.Snapshot(), settings)
	added, err := store.Add(s)
	if err != nil {
		logger.Debug("random sphere rejected", "err", err)
		return
	}
	logger.Debug("added sphere", "id", added.ID, "sphere", added)
}

// removeNewestSphere deletes the most recently added sphere, if any.
func removeNewestSphere(logger *log.Logger, store *scene.Store) {
	spheres := store.Snapshot()
	if len(spheres) == 0 {
		return
	}
	newest := spheres[len(spheres)-1]
	if err := store.Delete(newest.ID); err != nil {
		logger.Debug("remove sphere", "id", newest.ID, "err", err)
		return
	}
	logger.Debug("removed sphere", "id", newest.ID)
}

// previewFrame fits the frame to the terminal: w × h pixels, keeping the
// x range and stretching y so pixels stay square.
func previewFrame(base scene.Frame, w, h int) scene.Frame {
	f := base
	f.Width, f.Height = max(1, w), max(1, h)
	f.AspectRatio = scene.AspectFreeform
	cy := (base.View.MinY + base.View.MaxY) / 2
	half := (base.View.MaxX - base.View.MinX) * float64(f.Height) / float64(f.Width) / 2
	f.View.MinY, f.View.MaxY = cy-half, cy+half
	return f
}

func runPreview(ctx context.Context, a *app, file *scene.File, fps int) error {
	fps = max(1, fps)
	store, err := file.Store()
	if err != nil {
		return err
	}
	base := file.Settings
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 1))

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	state := &previewState{
		lightX: newFollower(base.Light.Position.X, fps),
		lightY: newFollower(base.Light.Position.Y, fps),
		eyeZ:   newFollower(base.EyePoint.Z, fps),
		width:  width,
		height: height,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for ev := range term.Events() {
			state.mu.Lock()
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				state.width, state.height = ev.Width, ev.Height
				state.resized = true

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("q", "escape", "ctrl+c"):
					cancel()
				case ev.MatchString("left", "a"):
					state.lightX.Target -= lightStep
				case ev.MatchString("right", "d"):
					state.lightX.Target += lightStep
				case ev.MatchString("up", "w"):
					state.lightY.Target += lightStep
				case ev.MatchString("down", "s"):
					state.lightY.Target -= lightStep
				case ev.MatchString("+", "="):
					state.eyeZ.Target += eyeStep
				case ev.MatchString("-", "_"):
					state.eyeZ.Target -= eyeStep
				case ev.MatchString("r"):
					state.reset(base)
				case ev.MatchString("n"):
					settings := base
					settings.EyePoint.Z = state.eyeZ.Target
					addRandomSphere(a.logger, store, rng, settings)
				case ev.MatchString("x"):
					removeNewestSphere(a.logger, store)
				}
			}
			state.mu.Unlock()
		}
	}()

	renderer := render.Renderer{Logger: a.logger}
	termRenderer := render.NewTerminalRenderer(term, width, height)
	renderedVersion := ^uint64(0)
	frameDuration := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		state.mu.Lock()
		moved := state.lightX.Update()
		moved = state.lightY.Update() || moved
		moved = state.eyeZ.Update() || moved
		resized := state.resized
		state.resized = false
		w, h := state.width, state.height
		settings := base
		settings.Light.Position.X = state.lightX.Position
		settings.Light.Position.Y = state.lightY.Position
		settings.EyePoint.Z = state.eyeZ.Position
		state.mu.Unlock()

		version := store.Version()
		if !moved && !resized && version == renderedVersion {
			continue
		}

		if resized {
			term.Erase()
			term.Resize(w, h)
			termRenderer = render.NewTerminalRenderer(term, w, h)
		}
		fbWidth, fbHeight := termRenderer.FramebufferSize()
		settings.Frame = previewFrame(base.Frame, fbWidth, fbHeight)

		start := time.Now()
		img, err := renderer.Render(ctx, store.Snapshot(), settings)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("render: %w", err)
		}
		renderedVersion = version

		termRenderer.Render(img)
		hud := hudStyle.Render(fmt.Sprintf("%d spheres  light %v  eye z %.1f  %s",
			store.Len(), settings.Light.Position, settings.EyePoint.Z,
			time.Since(start).Round(time.Millisecond)))
		uv.NewStyledString(hud).Draw(term, uv.Rect(0, h-1, w, 1))

		if err := termRenderer.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
}
