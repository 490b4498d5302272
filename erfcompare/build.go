// Package erfcompare builds the effective receptive field comparison: a
// filter window scanning a padded input grid once per kernel size, each scan
// followed by a heatmap of that kernel's receptive field.
package erfcompare

import (
	"errors"
	"fmt"

	theorylab "github.com/Jung-woojin/manim-theory-lab"
	"github.com/Jung-woojin/manim-theory-lab/receptive"
)

// Layout constants in scene units, matching the classic composition: input
// grid on the left, heatmap column on the right.
const (
	imageCenterX = -3.15
	imageCenterY = 0.05
	panelCenterX = 3.35
	panelCenterY = -0.1

	titleBuff        = 0.38
	infoBuff         = 0.10
	infoUnderPadBuff = 0.28
	infoUnderImgBuff = 0.18
	panelBuff        = 0.5
	captionBuff      = 0.18
	heatTitleBuff    = 0.08
	heatBoxBuff      = 0.025

	windowFillAlpha = 0.08
)

// Stroke widths, in pixels on a 1080-line frame.
const (
	gridStroke        = 0.55
	heatCellStroke    = 0.3
	placeholderStroke = 1.5
	scanStroke        = 2.6
	heatBoxStroke     = 4
)

// Scan is one kernel's pass over the input.
type Scan struct {
	Kernel  Kernel
	Padding int
	// Window is the side of the sliding window in pixels.
	Window float64
	// Path is the window center's route in pixel coordinates.
	Path    []receptive.Point
	Weights *receptive.WeightMatrix
	Heatmap *theorylab.Node
}

// Result exposes what Build computed, for reports and tests.
type Result struct {
	Config Config
	Input  *theorylab.Node
	Panel  *theorylab.Node
	Scans  []Scan

	fonts *fontSet
}

// Close releases the fonts loaded for the scene's text. Call it once the
// scene is no longer rendered.
func (r *Result) Close() error {
	if r == nil || r.fonts == nil {
		return nil
	}
	return r.fonts.Close()
}

// Weights returns the receptive field of every kernel in config order.
func (r *Result) Weights() []*receptive.WeightMatrix {
	out := make([]*receptive.WeightMatrix, len(r.Scans))
	for i, s := range r.Scans {
		out[i] = s.Weights
	}
	return out
}

// frame maps scene units (origin at center, y up) onto pixels.
type frame struct {
	w, h, ppu float64
}

func (f frame) point(x, y float64) theorylab.Vec2 {
	return theorylab.Vec2{X: f.w/2 + x*f.ppu, Y: f.h/2 - y*f.ppu}
}

func (f frame) px(u float64) float64 { return u * f.ppu }

// stroke converts a width given for a 1080-line frame.
func (f frame) stroke(w float64) float64 { return w * f.h / 1080 }

// fontSet loads one face per size on demand.
type fontSet struct {
	file  string
	faces map[float64]*theorylab.TTFFont
}

func (fs *fontSet) face(size float64) (theorylab.Font, error) {
	if f, ok := fs.faces[size]; ok {
		return f, nil
	}
	var (
		f   *theorylab.TTFFont
		err error
	)
	if fs.file == "" {
		f, err = theorylab.DefaultFont(size)
	} else {
		f, err = theorylab.LoadFontFile(fs.file, size)
	}
	if err != nil {
		return nil, fmt.Errorf("erfcompare: load font: %w", err)
	}
	fs.faces[size] = f
	return f, nil
}

// Close closes every loaded face. The set is empty afterwards.
func (fs *fontSet) Close() error {
	var errs []error
	for size, f := range fs.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("erfcompare: close font %v: %w", size, err))
		}
		delete(fs.faces, size)
	}
	return errors.Join(errs...)
}

// Build lays out the comparison and records its timeline:
//
//  1. fade in the input grid and its title
//  2. show one empty placeholder per kernel on the right
//  3. per kernel: trace the padded outline while the label panel and window
//     fade in, slide the window along the scan path, fade all three out,
//     then fade in that kernel's heatmap over its placeholder
//  4. fade in the caption above the heatmaps and hold
func Build(cfg Config) (*theorylab.Scene, *Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	fr := frame{w: float64(cfg.Width), h: float64(cfg.Height), ppu: cfg.PixelsPerUnit}
	fonts := &fontSet{file: cfg.FontFile, faces: make(map[float64]*theorylab.TTFFont)}
	var faces [4]theorylab.Font
	for i, size := range []float64{cfg.TitleSize, cfg.LabelSize, cfg.HeatmapTitleSize, cfg.CaptionSize} {
		f, err := fonts.face(size)
		if err != nil {
			fonts.Close()
			return nil, nil, err
		}
		faces[i] = f
	}
	titleFont, labelFont, heatFont, captionFont := faces[0], faces[1], faces[2], faces[3]

	scene := theorylab.NewScene()
	res := &Result{Config: cfg, fonts: fonts}

	// Input grid.
	n := cfg.N
	cellPx := fr.px(cfg.Cell * cfg.ImageScale)
	gapPx := fr.px(cfg.Gap * cfg.ImageScale)
	grid := theorylab.NewGroup("grid")
	for i := 0; i < n*n; i++ {
		sq := theorylab.NewSquare(fmt.Sprintf("px_%d", i), cellPx)
		sq.Fill = theorylab.ColorBlack
		sq.Stroke = theorylab.ColorGray
		sq.StrokeWidth = fr.stroke(gridStroke)
		grid.AddChild(sq)
	}
	grid.ArrangeGrid(n, n, gapPx)

	title := theorylab.NewText("input-title", fmt.Sprintf("Input Image (%d×%d)", n, n), titleFont, theorylab.ColorWhite)
	title.NextTo(grid.Bounds(), theorylab.Up, fr.px(titleBuff))
	input := theorylab.NewGroup("input", title, grid)
	input.MoveTo(fr.point(imageCenterX, imageCenterY))
	res.Input = input

	scene.Stage(input)
	scene.Play(theorylab.FadeIn(input))

	// Placeholders.
	side := fr.px(cfg.Placeholder)
	panel := theorylab.NewGroup("erf-panel")
	slots := make([]*theorylab.Node, len(cfg.Kernels))
	for i := range cfg.Kernels {
		ph := theorylab.NewSquare(fmt.Sprintf("placeholder_%d", i), side)
		ph.Stroke = theorylab.ColorDarkGray
		ph.StrokeWidth = fr.stroke(placeholderStroke)
		panel.AddChild(ph)
		slots[i] = ph
	}
	panel.ArrangeColumn(fr.px(panelBuff))
	panel.MoveTo(fr.point(panelCenterX, panelCenterY))
	res.Panel = panel
	scene.Add(panel)

	unit := fr.px((cfg.Cell + cfg.Gap) * cfg.ImageScale)
	heatStyle := HeatmapStyle{
		Cell:       fr.px(cfg.HeatmapCell),
		Gap:        fr.px(cfg.HeatmapGap),
		TitleBuff:  fr.px(heatTitleBuff),
		BoxBuff:    fr.px(heatBoxBuff),
		CellStroke: fr.stroke(heatCellStroke),
		BoxStroke:  fr.stroke(heatBoxStroke),
		TitleFont:  heatFont,
	}

	for i, k := range cfg.Kernels {
		col, _ := theorylab.ParseHex(k.Color)
		pad := receptive.Padding(k.Size)
		gridBounds := grid.Bounds()

		padRect := theorylab.NewSurroundingRect(fmt.Sprintf("pad_%d", k.Size), gridBounds, float64(pad)*unit, col, fr.stroke(scanStroke))

		label := theorylab.NewText("kernel-label", k.Label, labelFont, col)
		padLabel := theorylab.NewText("padding-label", fmt.Sprintf("Padding = %d", pad), labelFont, col)
		info := theorylab.NewGroup(fmt.Sprintf("info_%d", k.Size), label, padLabel)
		info.ArrangeColumn(fr.px(infoBuff))
		if k.InfoUnderGrid {
			info.NextTo(gridBounds, theorylab.Down, fr.px(infoUnderImgBuff))
		} else {
			info.NextTo(padRect.Bounds(), theorylab.Down, fr.px(infoUnderPadBuff))
		}

		winSide := fr.px((float64(k.Size)*cfg.Cell + float64(k.Size-1)*cfg.Gap) * cfg.ImageScale)
		window := theorylab.NewSquare(fmt.Sprintf("window_%d", k.Size), winSide)
		window.Fill = col.WithAlpha(windowFillAlpha)
		window.Stroke = col
		window.StrokeWidth = fr.stroke(scanStroke)

		pr := padRect.Bounds()
		path := receptive.ScanPath(receptive.Bounds{
			Left: pr.X, Top: pr.Y, Right: pr.Right(), Bottom: pr.Bottom(),
		}, winSide, n, n)
		poly := make([]theorylab.Vec2, len(path))
		for j, p := range path {
			poly[j] = theorylab.Vec2{X: p.X, Y: p.Y}
		}
		window.MoveTo(poly[0])

		scene.Stage(padRect, info, window)
		scene.Play(theorylab.NewCreate(padRect), theorylab.FadeIn(info), theorylab.FadeIn(window))
		scene.PlayFor(float32(cfg.ScanSeconds), theorylab.NewMoveAlongPath(window, theorylab.NewPolyline(poly)))
		scene.Play(theorylab.FadeOut(window), theorylab.FadeOut(padRect), theorylab.FadeOut(info))

		w := receptive.Compute(n, k.Size)
		hm := Heatmap(w, fmt.Sprintf("ERF after %d×%d filter", k.Size, k.Size), heatStyle)
		hm.Name = fmt.Sprintf("heatmap_%d", k.Size)
		hm.MoveTo(slots[i].Center())
		scene.Stage(hm)
		if k.HeatmapFade > 0 {
			scene.PlayFor(float32(k.HeatmapFade), theorylab.FadeIn(hm))
		} else {
			scene.Add(hm)
		}
		if k.HeatmapHold > 0 {
			scene.Wait(float32(k.HeatmapHold))
		}

		res.Scans = append(res.Scans, Scan{
			Kernel:  k,
			Padding: pad,
			Window:  winSide,
			Path:    path,
			Weights: w,
			Heatmap: hm,
		})
	}

	if cfg.Caption != "" {
		caption := theorylab.NewText("caption", cfg.Caption, captionFont, theorylab.ColorWhite)
		caption.NextTo(panel.Bounds(), theorylab.Up, fr.px(captionBuff))
		scene.Stage(caption)
		scene.Play(theorylab.FadeIn(caption))
	}
	if cfg.EndHold > 0 {
		scene.Wait(float32(cfg.EndHold))
	}

	theorylab.Logger().Debug("erf scene built",
		"n", n, "kernels", len(cfg.Kernels), "steps", len(scene.Steps()), "duration", scene.Duration())
	return scene, res, nil
}
