package theorylab

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// next windowed draw. The PNG is written to ScreenshotDir with a timestamped
// filename; a name already taken gets a numeric suffix, so existing files
// are never overwritten.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// PendingScreenshots returns the number of queued screenshots.
func (s *Scene) PendingScreenshots() int {
	return len(s.screenshotQueue)
}

// flushScreenshots captures the rendered screen for every queued label.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	s.writeScreenshots(screenNRGBA(screen), time.Now())
}

// writeScreenshots writes img once per queued label and empties the queue.
// Failures are logged, not returned, so a bad directory never stops playback.
func (s *Scene) writeScreenshots(img image.Image, now time.Time) []string {
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: mkdir failed", "dir", s.ScreenshotDir, "err", err)
		return nil
	}

	stamp := now.Format("20060102_150405")
	var written []string
	for _, label := range s.screenshotQueue {
		path, err := writePNG(s.ScreenshotDir, stamp+"_"+sanitizeLabel(label), img)
		if err != nil {
			Logger().Warn("screenshot: write failed", "err", err)
			continue
		}
		Logger().Info("screenshot written", "path", path)
		written = append(written, path)
	}
	return written
}

// screenNRGBA reads back an Ebitengine image as straight-alpha NRGBA.
func screenNRGBA(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

// unpremultiply converts premultiplied RGBA bytes to an NRGBA image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// maxNameTries bounds the suffixes createUnique tries for one name.
const maxNameTries = 1000

// writePNG encodes img to dir/<name>.png, or dir/<name>_2.png and so on when
// that file exists. It returns the path written.
func writePNG(dir, name string, img image.Image) (string, error) {
	f, path, err := createUnique(dir, name, ".png")
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}

// createUnique creates a new file named name+ext in dir, adding _2, _3, ...
// to name until the exclusive create succeeds.
func createUnique(dir, name, ext string) (*os.File, string, error) {
	for i := 1; i <= maxNameTries; i++ {
		file := name + ext
		if i > 1 {
			file = fmt.Sprintf("%s_%d%s", name, i, ext)
		}
		path := filepath.Join(dir, file)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create %s: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("create %s%s: no free name after %d tries", filepath.Join(dir, name), ext, maxNameTries)
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
