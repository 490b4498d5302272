package theorylab

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ExportConfig configures a headless render of a scene's timeline.
type ExportConfig struct {
	// Dir receives the frames, GIF and manifest. Created if missing.
	Dir string
	// Width and Height are the frame size in pixels. Default 1280×720.
	Width, Height int
	// FPS is the sampling rate of the timeline. Default 30.
	FPS int
	// Prefix names the PNG frames: <prefix>_00000.png. Default "frame".
	Prefix string

	// GIF additionally writes <prefix>.gif.
	GIF bool
	// GIFStride keeps every n-th frame in the GIF. Default FPS/10.
	GIFStride int
	// GIFDelay is the per-frame GIF delay in 100ths of a second. Default
	// derived from FPS and GIFStride.
	GIFDelay int
	// KeepFrames writes PNG frames even when a GIF is requested. PNG frames
	// are always written when GIF is false.
	KeepFrames bool
}

// ExportResult describes a finished export. It is also written to
// manifest.json in the output directory.
type ExportResult struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	FPS       int       `json:"fps"`
	Duration  float64   `json:"duration_seconds"`
	Frames    int       `json:"frames"`
	FrameGlob string    `json:"frame_glob,omitempty"`
	GIFPath   string    `json:"gif,omitempty"`
	GIFFrames int       `json:"gif_frames,omitempty"`

	ManifestPath string `json:"-"`
}

func (cfg *ExportConfig) applyDefaults() {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "frame"
	}
	if cfg.GIFStride <= 0 {
		cfg.GIFStride = max(cfg.FPS/10, 1)
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = max(100*cfg.GIFStride/cfg.FPS, 1)
	}
}

// FrameCount returns the number of frames an export of a timeline lasting
// duration seconds produces at fps: one at t=0 and one per 1/fps step up to
// and including the end.
func FrameCount(duration float64, fps int) int {
	if fps <= 0 || duration <= 0 {
		return 1
	}
	return int(math.Ceil(duration*float64(fps)-1e-9)) + 1
}

// Export plays the scene from the start and renders every frame with a
// GGCanvas. Cancelling ctx stops the export between frames.
func Export(ctx context.Context, scene *Scene, cfg ExportConfig) (*ExportResult, error) {
	cfg.applyDefaults()
	if cfg.Dir == "" {
		return nil, fmt.Errorf("theorylab: export: no output directory")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("theorylab: export: %w", err)
	}

	canvas := NewGGCanvas(cfg.Width, cfg.Height)
	defer canvas.Close()

	player := NewPlayer(scene)
	duration := scene.Duration()
	total := FrameCount(duration, cfg.FPS)
	writeFrames := cfg.KeepFrames || !cfg.GIF
	dt := 1 / float64(cfg.FPS)

	res := &ExportResult{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Width:     cfg.Width,
		Height:    cfg.Height,
		FPS:       cfg.FPS,
		Duration:  duration,
	}
	if writeFrames {
		res.FrameGlob = cfg.Prefix + "_*.png"
	}

	var anim *gif.GIF
	if cfg.GIF {
		anim = &gif.GIF{}
	}

	Logger().Info("export started",
		"run_id", res.RunID, "dir", cfg.Dir, "frames", total, "duration", duration)

	player.Update(0)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 {
			// Step to the exact frame time so float32 frame deltas don't drift.
			target := math.Min(float64(i)*dt, duration)
			player.Update(float32(target - player.Elapsed()))
		}

		scene.Render(canvas)
		if err := canvas.Err(); err != nil {
			return nil, fmt.Errorf("theorylab: export: frame %d: %w", i, err)
		}

		if writeFrames {
			path := filepath.Join(cfg.Dir, fmt.Sprintf("%s_%05d.png", cfg.Prefix, i))
			if err := canvas.SavePNG(path); err != nil {
				return nil, fmt.Errorf("theorylab: export: %w", err)
			}
		}
		if anim != nil && (i%cfg.GIFStride == 0 || i == total-1) {
			anim.Image = append(anim.Image, quantize(canvas.Image()))
			anim.Delay = append(anim.Delay, cfg.GIFDelay)
		}
		res.Frames++

		if i%max(1, total/10) == 0 {
			Logger().Debug("export progress", "frame", i, "of", total)
		}
	}

	if anim != nil {
		res.GIFPath = filepath.Join(cfg.Dir, cfg.Prefix+".gif")
		res.GIFFrames = len(anim.Image)
		if err := writeGIF(res.GIFPath, anim); err != nil {
			return nil, err
		}
	}

	res.ManifestPath = filepath.Join(cfg.Dir, "manifest.json")
	if err := writeManifest(res.ManifestPath, res); err != nil {
		return nil, err
	}

	Logger().Info("export finished",
		"run_id", res.RunID, "frames", res.Frames, "gif", res.GIFPath, "manifest", res.ManifestPath)
	return res, nil
}

// quantize maps a frame onto the Plan 9 palette with Floyd-Steinberg dither.
func quantize(img image.Image) *image.Paletted {
	p := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), img, img.Bounds().Min)
	return p
}

func writeGIF(path string, anim *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("theorylab: export: %w", err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("theorylab: export: encode %s: %w", path, err)
	}
	return f.Close()
}

func writeManifest(path string, res *ExportResult) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("theorylab: export: manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("theorylab: export: manifest: %w", err)
	}
	return nil
}
