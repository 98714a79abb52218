package touchmap

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string   `json:"action"`
	X      int      `json:"x,omitempty"`
	Y      int      `json:"y,omitempty"`
	Frames int      `json:"frames,omitempty"`
	Name   string   `json:"name,omitempty"`
	Args   []string `json:"args,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected pointer events and commands across frames
// for scripted playthroughs. It drives a SyntheticPointer; attach it to a
// Scene built on one via SetTestRunner.
//
// Supported actions: click {x,y}, press {x,y}, release {x,y},
// wait {frames}, command {name,args}, scroll {x,y}.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "press", "release", "wait", "scroll":
		case "command":
			if st.Name == "" {
				return nil, fmt.Errorf("parse test script: step %d: command without name", i)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before the pointer is sampled each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// scroller is implemented by maps that can jump to a scroll offset.
type scroller interface {
	SetScroll(x, y int)
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	sp, _ := s.pointer.(*SyntheticPointer)
	// Wait for pending injections to drain before advancing.
	if sp != nil && sp.Pending() > 0 {
		return
	}
	// Count down wait frames.
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
	case "click":
		if sp != nil {
			sp.InjectClick(st.X, st.Y)
		}
	case "press":
		if sp != nil {
			sp.InjectPress(st.X, st.Y)
		}
	case "release":
		if sp != nil {
			sp.InjectRelease(st.X, st.Y)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "command":
		s.Command(st.Name, st.Args...)
	case "scroll":
		if m, ok := s.mapState.(scroller); ok {
			m.SetScroll(st.X, st.Y)
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && (sp == nil || sp.Pending() == 0) {
		r.done = true
	}
}
