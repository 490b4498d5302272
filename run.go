package theorylab

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures a windowed playback started by Run.
type RunConfig struct {
	Title string
	// Width and Height are the logical frame size. Default 1280×720.
	Width, Height int
	// ShowFPS overlays frame rate and timeline position.
	ShowFPS bool
	// Loop restarts the timeline when it ends.
	Loop bool
	// Script, when set, drives seeks and screenshots. The window closes once
	// the script is done.
	Script *CaptureScript
}

// Run opens a window and plays the scene's timeline. Space pauses, R restarts,
// the arrow keys seek by one second and Escape quits. It blocks until the
// window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := newPlayback(scene, cfg)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// playback adapts a Scene and its Player to ebiten.Game.
type playback struct {
	scene  *Scene
	player *Player
	cfg    RunConfig
	canvas EbitenCanvas
	paused bool
}

func newPlayback(scene *Scene, cfg RunConfig) *playback {
	return &playback{scene: scene, player: NewPlayer(scene), cfg: cfg}
}

func (g *playback) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.cfg.Script != nil {
		g.cfg.Script.step(g)
		if g.cfg.Script.Done() {
			return ebiten.Termination
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.player.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.seek(g.player.Elapsed() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.seek(max(g.player.Elapsed()-1, 0))
	}

	if g.paused {
		return nil
	}
	g.player.Update(float32(1.0 / float64(ebiten.TPS())))
	if g.player.Done() && g.cfg.Loop {
		g.player.Reset()
	}
	return nil
}

func (g *playback) Draw(screen *ebiten.Image) {
	g.canvas.Target = screen
	g.scene.Render(&g.canvas)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nt: %.2f / %.2f s",
			ebiten.ActualFPS(), g.player.Elapsed(), g.scene.Duration()))
	}
	g.scene.flushScreenshots(screen)
}

func (g *playback) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// captureTarget

func (g *playback) seek(t float64)          { g.player.Seek(t) }
func (g *playback) screenshot(label string) { g.scene.Screenshot(label) }
func (g *playback) setPaused(paused bool)   { g.paused = paused }
func (g *playback) pendingScreenshots() int { return g.scene.PendingScreenshots() }
