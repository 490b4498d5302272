package theorylab

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidScript is returned by LoadCaptureScript for malformed scripts.
var ErrInvalidScript = errors.New("theorylab: invalid capture script")

// captureStep is a single action in a capture script.
type captureStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	At     float64 `json:"at,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// captureScriptFile is the top-level JSON structure for a capture script.
type captureScriptFile struct {
	Steps []captureStep `json:"steps"`
}

// captureTarget is what a script drives. The window runner implements it.
type captureTarget interface {
	seek(t float64)
	screenshot(label string)
	setPaused(paused bool)
	pendingScreenshots() int
}

// CaptureScript sequences seeks and screenshots across frames, one action
// per frame, so stills of chosen moments can be taken from a running window.
// Pass it to Run through RunConfig.Script.
type CaptureScript struct {
	steps     []captureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadCaptureScript parses a JSON capture script such as
//
//	{"steps": [
//	  {"action": "pause"},
//	  {"action": "seek", "at": 3.5},
//	  {"action": "screenshot", "label": "first-scan"},
//	  {"action": "wait", "frames": 10},
//	  {"action": "resume"}
//	]}
func LoadCaptureScript(jsonData []byte) (*CaptureScript, error) {
	var script captureScriptFile
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse capture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "pause", "resume":
		case "seek":
			if st.At < 0 {
				return nil, fmt.Errorf("%w: step %d: negative seek time %g", ErrInvalidScript, i, st.At)
			}
		case "wait":
			if st.Frames < 0 {
				return nil, fmt.Errorf("%w: step %d: negative frame count %d", ErrInvalidScript, i, st.Frames)
			}
		default:
			return nil, fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScript, i, st.Action)
		}
	}
	return &CaptureScript{steps: script.Steps}, nil
}

// LoadCaptureScriptFile reads and parses a capture script from disk.
func LoadCaptureScriptFile(path string) (*CaptureScript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture script: %w", err)
	}
	return LoadCaptureScript(data)
}

// Done reports whether every step has been executed.
func (r *CaptureScript) Done() bool {
	return r.done
}

// Len returns the number of steps.
func (r *CaptureScript) Len() int {
	return len(r.steps)
}

// step advances the script by one frame.
func (r *CaptureScript) step(t captureTarget) {
	if r.done {
		return
	}
	// Let queued screenshots be written before moving on.
	if t.pendingScreenshots() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		t.screenshot(st.Label)
	case "seek":
		t.seek(st.At)
	case "pause":
		t.setPaused(true)
	case "resume":
		t.setPaused(false)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && t.pendingScreenshots() == 0 {
		r.done = true
	}
}
