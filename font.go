package theorylab

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gogpu/gg/text"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement.
type Font interface {
	MeasureString(s string) (width, height float64)
	LineHeight() float64
	Size() float64
}

// TTFFont is a TrueType face usable by both canvases. Measurement and
// headless drawing go through gogpu/gg's text package; the Ebitengine face
// is parsed on first windowed draw.
type TTFFont struct {
	data   []byte
	size   float64
	source *text.FontSource
	face   text.Face
	lh     float64
	ascent float64

	ebitenFace *etext.GoTextFace
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given pixel size.
func LoadFont(ttf []byte, size float64) (*TTFFont, error) {
	source, err := text.NewFontSource(ttf)
	if err != nil {
		return nil, fmt.Errorf("theorylab: failed to parse TTF data: %w", err)
	}
	face := source.Face(size)
	m := face.Metrics()
	return &TTFFont{
		data:   ttf,
		size:   size,
		source: source,
		face:   face,
		lh:     m.Ascent + m.Descent + m.LineGap,
		ascent: m.Ascent,
	}, nil
}

// LoadFontFile reads a TrueType font from disk.
func LoadFontFile(path string, size float64) (*TTFFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theorylab: read font %s: %w", path, err)
	}
	return LoadFont(data, size)
}

// DefaultFont returns the Go Regular font at the given size.
func DefaultFont(size float64) (*TTFFont, error) {
	return LoadFont(goregular.TTF, size)
}

// MeasureString returns the advance width of s and the line height.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	w, _ := text.Measure(s, f.face)
	return w, f.lh
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 { return f.lh }

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 { return f.size }

// Ascent returns the distance from the top of the line box to the baseline.
func (f *TTFFont) Ascent() float64 { return f.ascent }

// Face returns the gogpu/gg face for direct headless drawing.
func (f *TTFFont) Face() text.Face { return f.face }

// EbitenFace returns the Ebitengine text/v2 face, parsing it on first use.
func (f *TTFFont) EbitenFace() (*etext.GoTextFace, error) {
	if f.ebitenFace != nil {
		return f.ebitenFace, nil
	}
	src, err := etext.NewGoTextFaceSource(bytes.NewReader(f.data))
	if err != nil {
		return nil, fmt.Errorf("theorylab: failed to parse TTF data: %w", err)
	}
	f.ebitenFace = &etext.GoTextFace{Source: src, Size: f.size}
	return f.ebitenFace, nil
}

// Close releases the font source.
func (f *TTFFont) Close() error {
	return f.source.Close()
}
