package erfcompare

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	theorylab "github.com/Jung-woojin/manim-theory-lab"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("erfcompare: invalid config")

// Kernel describes one filter scan and the heatmap revealed after it.
type Kernel struct {
	Size  int    `json:"size"`
	Color string `json:"color"`
	Label string `json:"label"`
	// InfoUnderGrid places the label panel under the input grid instead of
	// under the padded outline. Large paddings push the outline too far down.
	InfoUnderGrid bool `json:"info_under_grid,omitempty"`
	// HeatmapFade and HeatmapHold time the heatmap's reveal after the scan.
	HeatmapFade float64 `json:"heatmap_fade"`
	HeatmapHold float64 `json:"heatmap_hold"`
}

// Config holds every tunable of the comparison scene. Lengths are in scene
// units; PixelsPerUnit maps them onto the Width×Height frame with the origin
// at the frame's center and y pointing up.
type Config struct {
	N       int      `json:"n"`
	Kernels []Kernel `json:"kernels"`

	Cell          float64 `json:"cell"`
	Gap           float64 `json:"gap"`
	ImageScale    float64 `json:"image_scale"`
	HeatmapCell   float64 `json:"heatmap_cell"`
	HeatmapGap    float64 `json:"heatmap_gap"`
	Placeholder   float64 `json:"placeholder"`
	PixelsPerUnit float64 `json:"pixels_per_unit"`

	Width  int `json:"width"`
	Height int `json:"height"`

	ScanSeconds float64 `json:"scan_seconds"`
	EndHold     float64 `json:"end_hold"`

	TitleSize        float64 `json:"title_size"`
	LabelSize        float64 `json:"label_size"`
	HeatmapTitleSize float64 `json:"heatmap_title_size"`
	CaptionSize      float64 `json:"caption_size"`
	Caption          string  `json:"caption"`
	// FontFile is a TTF path. Empty uses Go Regular.
	FontFile string `json:"font_file,omitempty"`
}

// DefaultConfig returns the 3×3 versus 17×17 comparison on a 20×20 input.
func DefaultConfig() Config {
	return Config{
		N: 20,
		Kernels: []Kernel{
			{Size: 3, Color: "#58C4DD", Label: "3×3 Filter scan", HeatmapFade: 0.6, HeatmapHold: 0.4},
			{Size: 17, Color: "#FC6255", Label: "17×17 Filter scan", InfoUnderGrid: true, HeatmapFade: 0.3, HeatmapHold: 0.6},
		},
		Cell:             0.22,
		Gap:              0.010,
		ImageScale:       0.65,
		HeatmapCell:      0.085,
		HeatmapGap:       0.005,
		Placeholder:      2.4,
		PixelsPerUnit:    90,
		Width:            1280,
		Height:           720,
		ScanSeconds:      10,
		EndHold:          1.2,
		TitleSize:        22,
		LabelSize:        22,
		HeatmapTitleSize: 18,
		CaptionSize:      20,
		Caption:          "Large kernel → wider ERF",
	}
}

// LoadConfig reads a JSON config. Fields missing from the file keep their
// DefaultConfig values; a "kernels" list replaces the default list whole.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("erfcompare: read config: %w", err)
	}
	kernels := cfg.Kernels
	cfg.Kernels = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("erfcompare: parse config %s: %w", path, err)
	}
	if cfg.Kernels == nil {
		cfg.Kernels = kernels
	}
	return cfg, cfg.Validate()
}

// Validate reports the first problem with cfg, wrapped in ErrInvalidConfig.
func (cfg Config) Validate() error {
	if cfg.N <= 0 {
		return fmt.Errorf("%w: n must be positive, got %d", ErrInvalidConfig, cfg.N)
	}
	if len(cfg.Kernels) == 0 {
		return fmt.Errorf("%w: at least one kernel is required", ErrInvalidConfig)
	}
	for i, k := range cfg.Kernels {
		if k.Size <= 0 {
			return fmt.Errorf("%w: kernel %d: size must be positive, got %d", ErrInvalidConfig, i, k.Size)
		}
		if _, err := theorylab.ParseHex(k.Color); err != nil {
			return fmt.Errorf("%w: kernel %d: %v", ErrInvalidConfig, i, err)
		}
		if k.HeatmapFade < 0 || k.HeatmapHold < 0 {
			return fmt.Errorf("%w: kernel %d: negative heatmap timing", ErrInvalidConfig, i)
		}
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"cell", cfg.Cell},
		{"image_scale", cfg.ImageScale},
		{"heatmap_cell", cfg.HeatmapCell},
		{"placeholder", cfg.Placeholder},
		{"pixels_per_unit", cfg.PixelsPerUnit},
		{"scan_seconds", cfg.ScanSeconds},
		{"title_size", cfg.TitleSize},
		{"label_size", cfg.LabelSize},
		{"heatmap_title_size", cfg.HeatmapTitleSize},
		{"caption_size", cfg.CaptionSize},
	} {
		if f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, f.name, f.v)
		}
	}
	if cfg.Gap < 0 || cfg.HeatmapGap < 0 || cfg.EndHold < 0 {
		return fmt.Errorf("%w: gaps and holds must not be negative", ErrInvalidConfig)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: frame size must be positive, got %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	return nil
}
