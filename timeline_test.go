package theorylab

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestSceneDuration(t *testing.T) {
	s := NewScene()
	a := NewRect("a", 1, 1)
	s.Stage(a)
	s.Play(FadeIn(a))
	s.Wait(0.5)
	s.PlayFor(2, NewCreate(a), FadeOut(a))
	s.Add(NewRect("b", 1, 1))

	if got := s.Duration(); !approx(got, 3.5) {
		t.Errorf("Duration = %v, want 3.5", got)
	}
	if got := len(s.Steps()); got != 4 {
		t.Errorf("steps = %d, want 4", got)
	}
}

func TestPlayForOverridesDurations(t *testing.T) {
	s := NewScene()
	a := NewRect("a", 1, 1)
	fade := FadeIn(a)
	create := NewCreate(a)
	create.SetDuration(5)
	st := s.PlayFor(0.25, fade, create)
	if fade.Duration() != 0.25 || create.Duration() != 0.25 || st.Duration() != 0.25 {
		t.Errorf("durations = %v/%v/%v, want 0.25", fade.Duration(), create.Duration(), st.Duration())
	}
}

func TestStageHidesAndAttaches(t *testing.T) {
	s := NewScene()
	a := NewRect("a", 1, 1)
	s.Stage(a)
	if a.Parent != s.Root() || a.Visible {
		t.Errorf("staged node: parent=%v visible=%v", a.Parent, a.Visible)
	}
}

func TestPlayerAddShowsImmediately(t *testing.T) {
	s := NewScene()
	a := NewRect("a", 1, 1)
	s.Add(a)
	s.Wait(1)

	p := NewPlayer(s)
	if a.Visible {
		t.Fatal("node visible before playback")
	}
	p.Update(0)
	if !a.Visible {
		t.Error("Add step should show the node at t=0")
	}
}

func TestPlayerCrossesSteps(t *testing.T) {
	s := NewScene()
	a, b := NewRect("a", 1, 1), NewRect("b", 1, 1)
	s.Stage(a, b)
	s.Play(FadeIn(a))
	s.Play(FadeIn(b))

	p := NewPlayer(s)
	p.Update(1.5)
	if a.Alpha != 1 || !a.Visible {
		t.Errorf("a: alpha=%v visible=%v, want fully in", a.Alpha, a.Visible)
	}
	if !b.Visible || !approx(b.Alpha, 0.5) {
		t.Errorf("b: alpha=%v visible=%v, want half in", b.Alpha, b.Visible)
	}
	if !approx(p.Elapsed(), 1.5) {
		t.Errorf("Elapsed = %v, want 1.5", p.Elapsed())
	}
	if p.Done() {
		t.Error("player done early")
	}

	p.Update(10)
	if !p.Done() || !approx(p.Elapsed(), 2) {
		t.Errorf("done=%v elapsed=%v, want done at 2", p.Done(), p.Elapsed())
	}
}

func TestPlayerSeekIsDeterministic(t *testing.T) {
	s := NewScene()
	a, b := NewRect("a", 1, 1), NewRect("b", 1, 1)
	s.Stage(a, b)
	s.Play(FadeIn(a).WithEase(ease.Linear))
	s.Play(FadeIn(b).WithEase(ease.Linear))

	p := NewPlayer(s)
	p.Seek(1.5)
	p.Seek(0.5)
	if !approx(a.Alpha, 0.5) {
		t.Errorf("a alpha = %v, want 0.5", a.Alpha)
	}
	if b.Visible {
		t.Error("b should be hidden again after seeking back")
	}

	p.Seek(1.75)
	aAlpha, bAlpha := a.Alpha, b.Alpha
	p.Reset()
	p.Update(0.75)
	p.Update(1)
	if a.Alpha != aAlpha || !approx(b.Alpha, bAlpha) {
		t.Errorf("incremental playback (%v, %v) differs from seek (%v, %v)", a.Alpha, b.Alpha, aAlpha, bAlpha)
	}
}

func TestPlayerResetRestoresPositions(t *testing.T) {
	s := NewScene()
	n := NewSquare("n", 2)
	n.MoveTo(Vec2{5, 5})
	s.Add(n)
	s.Play(NewMoveAlongPath(n, NewPolyline([]Vec2{{10, 10}, {50, 10}})))

	p := NewPlayer(s)
	p.Update(2)
	if got := n.Center(); !approxVec(got, Vec2{50, 10}) {
		t.Fatalf("center after play = %v, want (50, 10)", got)
	}
	p.Reset()
	if got := n.Center(); !approxVec(got, Vec2{5, 5}) {
		t.Errorf("center after Reset = %v, want (5, 5)", got)
	}
	if n.Visible {
		t.Error("Reset should restore the staged, hidden state")
	}
	if p.Elapsed() != 0 || p.Done() {
		t.Error("Reset should rewind the clock")
	}
}

func TestPlayerEmptyScene(t *testing.T) {
	p := NewPlayer(NewScene())
	if !p.Done() {
		t.Error("empty timeline should be done")
	}
	p.Update(1)
	if p.Elapsed() != 0 {
		t.Errorf("Elapsed = %v, want 0", p.Elapsed())
	}
}

func TestPlayerWaitOnly(t *testing.T) {
	s := NewScene()
	s.Wait(1)
	s.Wait(1)
	p := NewPlayer(s)
	for i := 0; i < 60; i++ {
		p.Update(1.0 / 30)
	}
	if !p.Done() {
		t.Errorf("player not done after 2s of 1/30 frames (elapsed %v)", p.Elapsed())
	}
}
