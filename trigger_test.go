package touchmap

import (
	"strings"
	"testing"

	"github.com/d5/tengo/v2"
)

func newTestModule(sample PointerSample, m MapState) (map[string]tengo.Object, *CommandDispatcher) {
	d := NewCommandDispatcher()
	return NewScriptModule(NewHitTestService(&fakePointer{sample: sample}, m), d), d
}

func mustCompile(t *testing.T, name, src string, module map[string]tengo.Object) *Trigger {
	t.Helper()
	tr, err := CompileTrigger(name, 0, []byte(src), module)
	if err != nil {
		t.Fatalf("compile %s: %v", name, err)
	}
	return tr
}

func TestTrigger_EvalResetsFire(t *testing.T) {
	ptr := &fakePointer{sample: pressedAt(5, 5).sample}
	module := NewScriptModule(NewHitTestService(ptr, &fakeMap{tw: 32, th: 32}), NewCommandDispatcher())
	tr := mustCompile(t, "box", `
touch := import("touch")
if touch.on_screen(0, 0, 10, 10) {
	fire = true
}
`, module)

	fired, err := tr.Eval()
	if err != nil || !fired {
		t.Fatalf("first Eval = %v, %v; want true, nil", fired, err)
	}

	ptr.sample.FramesPressed = 2
	fired, err = tr.Eval()
	if err != nil || fired {
		t.Errorf("held pointer Eval = %v, %v; want false, nil", fired, err)
	}
}

func TestTrigger_EventID(t *testing.T) {
	module, _ := newTestModule(pressedAt(0, 0).sample, &fakeMap{tw: 32, th: 32})
	tr, err := CompileTrigger("id", 7, []byte(`fire = event_id == 7`), module)
	if err != nil {
		t.Fatal(err)
	}
	if fired, err := tr.Eval(); err != nil || !fired {
		t.Errorf("Eval = %v, %v", fired, err)
	}
}

func TestCompileTrigger_Error(t *testing.T) {
	module, _ := newTestModule(PointerSample{}, &fakeMap{tw: 32, th: 32})
	_, err := CompileTrigger("broken", 0, []byte(`fire = (`), module)
	if err == nil {
		t.Fatal("expected compile error")
	}
	if !strings.Contains(err.Error(), `compile trigger "broken"`) {
		t.Errorf("error = %v", err)
	}
}

func TestTriggerSet(t *testing.T) {
	module, _ := newTestModule(PointerSample{}, &fakeMap{tw: 32, th: 32})
	var s TriggerSet
	a := mustCompile(t, "a", `fire = true`, module)
	b := mustCompile(t, "b", `fire = false`, module)
	c := mustCompile(t, "c", `fire = true`, module)
	s.Add(a)
	s.Add(b)
	s.Add(c)

	b2 := mustCompile(t, "b", `fire = true`, module)
	s.Replace(b2)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if s.Get("b") != b2 {
		t.Error("Replace should swap b")
	}

	var order []string
	if err := s.Evaluate(func(tr *Trigger) { order = append(order, tr.Name) }); err != nil {
		t.Fatal(err)
	}
	if strings.Join(order, ",") != "a,b,c" {
		t.Errorf("fire order = %v, want a,b,c", order)
	}

	if !s.Remove("a") || s.Remove("a") {
		t.Error("Remove should succeed once")
	}
	if s.Get("a") != nil || s.Len() != 2 {
		t.Error("a should be gone")
	}
}

func TestTriggerSet_EvaluateJoinsErrors(t *testing.T) {
	m := NewTiledMap(10, 10, 32, 32)
	module := NewScriptModule(NewHitTestService(&fakePointer{sample: pressedAt(0, 0).sample}, m), NewCommandDispatcher())
	var s TriggerSet
	s.Add(mustCompile(t, "bad1", `touch := import("touch"); x := touch.event_x(99)`, module))
	s.Add(mustCompile(t, "good", `fire = true`, module))
	s.Add(mustCompile(t, "bad2", `touch := import("touch"); x := touch.tile_width(1)`, module))

	var fired []string
	err := s.Evaluate(func(tr *Trigger) { fired = append(fired, tr.Name) })
	if err == nil {
		t.Fatal("expected error")
	}
	if len(fired) != 1 || fired[0] != "good" {
		t.Errorf("fired = %v, want [good]", fired)
	}
	msg := err.Error()
	for _, want := range []string{`trigger "bad1"`, "unknown event 99", `trigger "bad2"`, "wrong number of arguments"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should contain %q", msg, want)
		}
	}
}
