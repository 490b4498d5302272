package theorylab

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// recordingCanvas captures draw calls for inspection.
type recordingCanvas struct {
	calls []drawCall
}

type drawCall struct {
	op     string
	rect   Rect
	color  Color
	width  float64
	points []Vec2
	text   string
	at     Vec2
}

func (c *recordingCanvas) Clear(col Color) {
	c.calls = append(c.calls, drawCall{op: "clear", color: col})
}

func (c *recordingCanvas) FillRect(r Rect, col Color) {
	c.calls = append(c.calls, drawCall{op: "fill", rect: r, color: col})
}

func (c *recordingCanvas) StrokeRect(r Rect, width float64, col Color) {
	c.calls = append(c.calls, drawCall{op: "stroke", rect: r, width: width, color: col})
}

func (c *recordingCanvas) StrokePolyline(points []Vec2, width float64, col Color) {
	c.calls = append(c.calls, drawCall{op: "polyline", points: points, width: width, color: col})
}

func (c *recordingCanvas) DrawText(s string, _ Font, x, y float64, col Color) {
	c.calls = append(c.calls, drawCall{op: "text", text: s, at: Vec2{x, y}, color: col})
}

func (c *recordingCanvas) ops() string {
	var b strings.Builder
	for i, call := range c.calls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(call.op)
	}
	return b.String()
}

// fixedFont measures every rune as 10 pixels wide.
type fixedFont struct{}

func (fixedFont) MeasureString(s string) (float64, float64) {
	return float64(len([]rune(s))) * 10, 12
}
func (fixedFont) LineHeight() float64 { return 12 }
func (fixedFont) Size() float64       { return 12 }

func TestRenderClearsFirst(t *testing.T) {
	s := NewScene()
	s.ClearColor = ColorDarkGray
	c := &recordingCanvas{}
	s.Render(c)
	if len(c.calls) != 1 || c.calls[0].op != "clear" || c.calls[0].color != ColorDarkGray {
		t.Errorf("calls = %v, want a single clear", c.calls)
	}
}

func TestRenderRectFillAndStroke(t *testing.T) {
	s := NewScene()
	g := NewGroup("g")
	g.SetPosition(10, 20)
	g.Alpha = 0.5
	r := NewRect("r", 30, 40)
	r.SetPosition(1, 2)
	r.Fill = ColorBlue
	r.Stroke = ColorWhite
	r.StrokeWidth = 2
	g.AddChild(r)
	s.Root().AddChild(g)

	c := &recordingCanvas{}
	s.Render(c)
	if got := c.ops(); got != "clear fill stroke" {
		t.Fatalf("ops = %q", got)
	}
	fill := c.calls[1]
	if fill.rect != (Rect{11, 22, 30, 40}) {
		t.Errorf("fill rect = %v", fill.rect)
	}
	if fill.color.A != 0.5 || fill.color.R != ColorBlue.R {
		t.Errorf("fill color = %v, want blue at half alpha", fill.color)
	}
	if stroke := c.calls[2]; stroke.width != 2 || stroke.color.A != 0.5 {
		t.Errorf("stroke = %+v", stroke)
	}
}

func TestRenderSkipsHiddenAndTransparent(t *testing.T) {
	s := NewScene()
	hidden := NewSquare("hidden", 10)
	hidden.Fill = ColorWhite
	hidden.Visible = false
	faded := NewSquare("transparent", 10)
	faded.Fill = ColorWhite
	faded.Alpha = 0
	parent := NewGroup("parent", NewSquare("child", 5))
	parent.Children()[0].Fill = ColorWhite
	parent.Visible = false
	s.Root().AddChild(hidden)
	s.Root().AddChild(faded)
	s.Root().AddChild(parent)

	c := &recordingCanvas{}
	s.Render(c)
	if got := c.ops(); got != "clear" {
		t.Errorf("ops = %q, want only clear", got)
	}
}

func TestRenderPartialReveal(t *testing.T) {
	s := NewScene()
	r := NewSquare("r", 10)
	r.Fill = ColorWhite
	r.Stroke = ColorRed
	r.StrokeWidth = 1
	r.Reveal = 0.25
	s.Root().AddChild(r)

	c := &recordingCanvas{}
	s.Render(c)
	if got := c.ops(); got != "clear fill polyline" {
		t.Fatalf("ops = %q", got)
	}
	if a := c.calls[1].color.A; !approx(a, 0.25) {
		t.Errorf("fill alpha = %v, want 0.25", a)
	}
	pts := c.calls[2].points
	if len(pts) != 2 || !approxVec(pts[1], Vec2{10, 0}) {
		t.Errorf("outline prefix = %v, want the top edge", pts)
	}
}

func TestRenderZeroRevealDrawsNothing(t *testing.T) {
	s := NewScene()
	r := NewSquare("r", 10)
	r.Fill = ColorWhite
	r.Reveal = 0
	s.Root().AddChild(r)
	c := &recordingCanvas{}
	s.Render(c)
	if got := c.ops(); got != "clear" {
		t.Errorf("ops = %q, want only clear", got)
	}
}

func TestRenderText(t *testing.T) {
	s := NewScene()
	txt := NewText("label", "abc", fixedFont{}, ColorRed)
	txt.SetPosition(7, 9)
	s.Root().AddChild(txt)
	if txt.Width != 30 || txt.Height != 12 {
		t.Errorf("measured %vx%v, want 30x12", txt.Width, txt.Height)
	}

	c := &recordingCanvas{}
	s.Render(c)
	if got := c.ops(); got != "clear text" {
		t.Fatalf("ops = %q", got)
	}
	if call := c.calls[1]; call.text != "abc" || call.at != (Vec2{7, 9}) || call.color != ColorRed {
		t.Errorf("text call = %+v", call)
	}
}

func TestRenderDebugStats(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	s := NewScene()
	r := NewSquare("r", 10)
	r.Fill = ColorWhite
	r.Stroke = ColorWhite
	r.StrokeWidth = 1
	s.Root().AddChild(r)

	s.Render(&recordingCanvas{})
	if buf.Len() != 0 {
		t.Errorf("stats logged without debug mode: %s", buf.String())
	}

	s.SetDebugMode(true)
	s.Render(&recordingCanvas{})
	out := buf.String()
	if !strings.Contains(out, "frame rendered") || !strings.Contains(out, "draw_calls=2") || !strings.Contains(out, "nodes=2") {
		t.Errorf("debug log = %q", out)
	}
}
