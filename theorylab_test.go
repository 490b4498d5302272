package theorylab

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#58C4DD", color.NRGBA{0x58, 0xC4, 0xDD, 0xff}},
		{"fc6255", color.NRGBA{0xfc, 0x62, 0x55, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}},
		{"  #123456 ", color.NRGBA{0x12, 0x34, 0x56, 0xff}},
	}
	for _, tt := range tests {
		c, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got := c.NRGBA(); got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#12", "#12345", "#gggggg", "blue"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}

func TestColorLerp(t *testing.T) {
	mid := ColorBlack.Lerp(ColorWhite, 0.5)
	if !approx(mid.R, 0.5) || !approx(mid.G, 0.5) || !approx(mid.B, 0.5) || mid.A != 1 {
		t.Errorf("midpoint = %v", mid)
	}
	if got := ColorBlack.Lerp(ColorWhite, -1); got != ColorBlack {
		t.Errorf("t<0 = %v, want black", got)
	}
	if got := ColorBlack.Lerp(ColorWhite, 2); got != ColorWhite {
		t.Errorf("t>1 = %v, want white", got)
	}
}

func TestColorNRGBA(t *testing.T) {
	if got := ColorWhite.WithAlpha(0.5).NRGBA(); got != (color.NRGBA{255, 255, 255, 128}) {
		t.Errorf("NRGBA = %v", got)
	}
	if got := (Color{R: 2, G: -1}).NRGBA(); got.R != 255 || got.G != 0 {
		t.Errorf("out of range components not clamped: %v", got)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right/Bottom = %v/%v", r.Right(), r.Bottom())
	}
	if r.Center() != (Vec2{25, 40}) {
		t.Errorf("Center = %v", r.Center())
	}
	if !r.Contains(10, 20) || !r.Contains(40, 60) || r.Contains(41, 30) {
		t.Error("Contains edge handling")
	}
	if got := r.Expand(5); got != (Rect{5, 15, 40, 50}) {
		t.Errorf("Expand = %v", got)
	}
	if got := r.Union(Rect{0, 50, 5, 20}); got != (Rect{0, 20, 40, 50}) {
		t.Errorf("Union = %v", got)
	}
	out := r.Outline()
	if len(out) != 5 || out[0] != out[4] || out[2] != (Vec2{40, 60}) {
		t.Errorf("Outline = %v", out)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, 4}).Sub(Vec2{1, 1}).Scale(2)
	if v != (Vec2{6, 10}) {
		t.Errorf("got %v, want (6, 10)", v)
	}
}
