package theorylab

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"scan-3x3", "scan-3x3"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"3×3", "3_3"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	s := NewScene()
	s.Screenshot("a")
	s.Screenshot("b")
	s.Screenshot("c")
	if s.PendingScreenshots() != 3 {
		t.Fatalf("queue len = %d, want 3", s.PendingScreenshots())
	}
	if s.screenshotQueue[0] != "a" || s.screenshotQueue[1] != "b" || s.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", s.screenshotQueue)
	}
}

func TestScreenshotDirDefault(t *testing.T) {
	s := NewScene()
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestWriteScreenshots(t *testing.T) {
	s := NewScene()
	s.ScreenshotDir = filepath.Join(t.TempDir(), "shots")
	s.Screenshot("first scan")
	s.Screenshot("end")

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	paths := s.writeScreenshots(img, now)

	want := []string{
		filepath.Join(s.ScreenshotDir, "20260102_030405_first_scan.png"),
		filepath.Join(s.ScreenshotDir, "20260102_030405_end.png"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("path %d = %q, want %q", i, paths[i], p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("stat %s: %v", p, err)
		}
	}
	if s.PendingScreenshots() != 0 {
		t.Error("queue should be empty after writing")
	}
}

func TestWriteScreenshotsSameSecond(t *testing.T) {
	s := NewScene()
	s.ScreenshotDir = t.TempDir()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	// A file from an earlier run under the same name must survive.
	existing := filepath.Join(s.ScreenshotDir, "20260102_030405_scan.png")
	if err := os.WriteFile(existing, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	s.Screenshot("scan")
	s.Screenshot("scan")
	first := s.writeScreenshots(img, now)
	s.Screenshot("scan")
	second := s.writeScreenshots(img, now)

	got := append(append([]string(nil), first...), second...)
	want := []string{
		filepath.Join(s.ScreenshotDir, "20260102_030405_scan_2.png"),
		filepath.Join(s.ScreenshotDir, "20260102_030405_scan_3.png"),
		filepath.Join(s.ScreenshotDir, "20260102_030405_scan_4.png"),
	}
	if len(got) != len(want) {
		t.Fatalf("paths = %v, want %v", got, want)
	}
	for i, p := range want {
		if got[i] != p {
			t.Errorf("path %d = %q, want %q", i, got[i], p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("stat %s: %v", p, err)
		}
	}
	if data, err := os.ReadFile(existing); err != nil || string(data) != "keep" {
		t.Errorf("existing screenshot overwritten: %q, %v", data, err)
	}
}

func TestWriteScreenshotsBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.ScreenshotDir = filepath.Join(file, "shots")
	s.Screenshot("x")
	if paths := s.writeScreenshots(image.NewNRGBA(image.Rect(0, 0, 1, 1)), time.Now()); paths != nil {
		t.Errorf("paths = %v, want none", paths)
	}
	if s.PendingScreenshots() != 0 {
		t.Error("queue should be dropped on failure")
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	tests := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{255, 127, 0, 128}},
		{1, color.NRGBA{10, 20, 30, 255}},
		{2, color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, 0); got != tt.want {
			t.Errorf("pixel %d = %v, want %v", tt.x, got, tt.want)
		}
	}
}
