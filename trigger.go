package touchmap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// fireVar is the script global a trigger assigns to report a hit.
const fireVar = "fire"

// Trigger is a compiled touch condition attached to a map event.
//
// The script sees two predeclared globals: event_id, the event the trigger
// belongs to, and fire, reset to false before every run. The trigger fires
// when fire is truthy after the script finishes:
//
//	touch := import("touch")
//	x := touch.event_pixel_x(event_id)
//	y := touch.event_pixel_y(event_id)
//	th := touch.tile_height()
//	fire = touch.on_map(x, y - th, touch.tile_width(), th * 2)
type Trigger struct {
	Name    string
	EventID int
	// Path is the script file the trigger was loaded from, if any.
	Path string

	compiled *tengo.Compiled
}

// CompileTrigger compiles src against the given touch module (see
// NewScriptModule). Tengo's standard library modules are importable too.
func CompileTrigger(name string, eventID int, src []byte, module map[string]tengo.Object) (*Trigger, error) {
	script := tengo.NewScript(src)
	mods := stdlib.GetModuleMap(stdlib.AllModuleNames()...)
	mods.AddBuiltinModule(ScriptModuleName, module)
	script.SetImports(mods)
	if err := script.Add("event_id", eventID); err != nil {
		return nil, fmt.Errorf("touchmap: trigger %q: %w", name, err)
	}
	if err := script.Add(fireVar, false); err != nil {
		return nil, fmt.Errorf("touchmap: trigger %q: %w", name, err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("touchmap: compile trigger %q: %w", name, err)
	}
	return &Trigger{Name: name, EventID: eventID, compiled: compiled}, nil
}

// LoadTriggerFile reads and compiles a trigger script from disk.
func LoadTriggerFile(name string, eventID int, path string, module map[string]tengo.Object) (*Trigger, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("touchmap: read trigger %q: %w", name, err)
	}
	t, err := CompileTrigger(name, eventID, src, module)
	if err != nil {
		return nil, err
	}
	t.Path = filepath.Clean(path)
	return t, nil
}

// Eval runs the script once and reports whether it set fire.
func (t *Trigger) Eval() (bool, error) {
	if err := t.compiled.Set(fireVar, false); err != nil {
		return false, err
	}
	if err := t.compiled.Run(); err != nil {
		return false, err
	}
	return t.compiled.Get(fireVar).Bool(), nil
}

// TriggerSet is an ordered collection of triggers keyed by name.
type TriggerSet struct {
	triggers []*Trigger
}

// Add appends t. A trigger with the same name is replaced in place.
func (s *TriggerSet) Add(t *Trigger) {
	s.Replace(t)
}

// Replace swaps the trigger named t.Name for t, keeping its position, or
// appends t if no trigger has that name.
func (s *TriggerSet) Replace(t *Trigger) {
	for i, cur := range s.triggers {
		if cur.Name == t.Name {
			s.triggers[i] = t
			return
		}
	}
	s.triggers = append(s.triggers, t)
}

// Remove deletes the trigger with the given name and reports whether it
// existed.
func (s *TriggerSet) Remove(name string) bool {
	for i, cur := range s.triggers {
		if cur.Name == name {
			copy(s.triggers[i:], s.triggers[i+1:])
			s.triggers[len(s.triggers)-1] = nil
			s.triggers = s.triggers[:len(s.triggers)-1]
			return true
		}
	}
	return false
}

// Get returns the trigger with the given name, or nil.
func (s *TriggerSet) Get(name string) *Trigger {
	for _, cur := range s.triggers {
		if cur.Name == name {
			return cur
		}
	}
	return nil
}

// ByPath returns the triggers loaded from path.
func (s *TriggerSet) ByPath(path string) []*Trigger {
	var out []*Trigger
	for _, cur := range s.triggers {
		if cur.Path == path {
			out = append(out, cur)
		}
	}
	return out
}

// Len returns the number of triggers.
func (s *TriggerSet) Len() int {
	return len(s.triggers)
}

// Evaluate runs every trigger in order and calls fire for each one that
// fires. A failing trigger does not stop the others; all errors are joined.
func (s *TriggerSet) Evaluate(fire func(t *Trigger)) error {
	var errs []error
	for _, t := range s.triggers {
		ok, err := t.Eval()
		if err != nil {
			errs = append(errs, fmt.Errorf("touchmap: trigger %q: %w", t.Name, err))
			continue
		}
		if ok {
			fire(t)
		}
	}
	return errors.Join(errs...)
}
