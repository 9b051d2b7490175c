package wecs

import (
	"fmt"
	"strings"
	"testing"
)

// Resources used across injection tests.
type tickClock struct {
	tick int
}

type netSession struct {
	addr string
}

type paused struct{}

// moveSystem exercises world and resource injection.
type moveSystem struct {
	World *World
	Clock *tickClock  `wecs:"res"`
	Net   *netSession `wecs:"res,opt"`

	runs int
}

func (s *moveSystem) Run(w *World) error {
	s.runs++
	return nil
}

func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Fatalf("expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}

func TestNewSystemFromFunc(t *testing.T) {
	ran := false
	sys := NewSystem(func(w *World) error {
		ran = true
		return nil
	})

	sys.Initialize(NewWorld())
	if err := sys.Run(NewWorld()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !ran {
		t.Fatalf("expected the wrapped function to run")
	}
}

func TestNewSystemFromSystemFunc(t *testing.T) {
	calls := 0
	sys := NewSystem(SystemFunc(func(w *World) error {
		calls++
		return nil
	}))

	if err := sys.Run(NewWorld()); err != nil || calls != 1 {
		t.Fatalf("expected one call, got %d (err %v)", calls, err)
	}
}

func TestNewSystemPassesSystemThrough(t *testing.T) {
	orig := &traceSystem{name: "x"}
	if sys := NewSystem(orig); sys != orig {
		t.Fatalf("expected a system without injected fields to pass through unchanged")
	}
}

type runOnly struct {
	calls int
}

func (r *runOnly) Run(w *World) error {
	r.calls++
	return nil
}

func TestNewSystemWrapsRunnable(t *testing.T) {
	r := &runOnly{}
	sys := NewSystem(r)

	sys.Initialize(NewWorld())
	if err := sys.Run(NewWorld()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.calls != 1 {
		t.Fatalf("expected one call, got %d", r.calls)
	}
}

func TestNewSystemNilPanics(t *testing.T) {
	expectPanic(t, "nil system", func() { NewSystem(nil) })
}

func TestNewSystemTypedNilPanics(t *testing.T) {
	var s *moveSystem
	expectPanic(t, "nil system", func() { NewSystem(s) })
}

func TestNewSystemRejectsArbitraryValue(t *testing.T) {
	expectPanic(t, "does not satisfy the system contract", func() { NewSystem(42) })
}

type tagNoRun struct {
	Clock *tickClock `wecs:"res"`
}

func TestNewSystemTaggedWithoutRunPanics(t *testing.T) {
	expectPanic(t, "must implement Run(*World) error", func() { NewSystem(&tagNoRun{}) })
}

type valueTagged struct {
	Clock *tickClock `wecs:"res"`
}

func (valueTagged) Run(w *World) error { return nil }

func TestNewSystemValueStructWithTagsPanics(t *testing.T) {
	expectPanic(t, "must be registered as a pointer", func() { NewSystem(valueTagged{}) })
}

type badResField struct {
	Clock tickClock `wecs:"res"`
}

func (b *badResField) Run(w *World) error { return nil }

func TestNewSystemNonPointerResourceFieldPanics(t *testing.T) {
	expectPanic(t, "must be a pointer", func() { NewSystem(&badResField{}) })
}

type unexportedResField struct {
	clock *tickClock `wecs:"res"`
}

func (u *unexportedResField) Run(w *World) error { return nil }

func TestNewSystemUnexportedResourceFieldPanics(t *testing.T) {
	expectPanic(t, "must be exported", func() { NewSystem(&unexportedResField{}) })
}

type hiddenWorld struct {
	w *World
}

func (h *hiddenWorld) Run(w *World) error { return nil }

func TestNewSystemUnexportedWorldFieldPanics(t *testing.T) {
	expectPanic(t, "world field w must be exported", func() { NewSystem(&hiddenWorld{}) })
}

func TestInjectionProvidesDeclaredFields(t *testing.T) {
	w := NewWorld()
	clock := &tickClock{tick: 7}
	InsertResource(w, clock)

	ms := &moveSystem{}
	sys := NewSystem(ms)

	if err := sys.Run(w); err != nil {
		t.Fatalf("run: %v", err)
	}
	if ms.World != w {
		t.Fatalf("expected the world to be injected")
	}
	if ms.Clock != clock {
		t.Fatalf("expected the clock resource to be injected")
	}
	if ms.Net != nil {
		t.Fatalf("expected the optional resource to stay nil while absent")
	}
	if ms.runs != 1 {
		t.Fatalf("expected one run, got %d", ms.runs)
	}

	net := &netSession{addr: "10.0.0.1:19132"}
	InsertResource(w, net)
	if err := sys.Run(w); err != nil {
		t.Fatalf("run: %v", err)
	}
	if ms.Net != net {
		t.Fatalf("expected the optional resource to be injected once present")
	}
}

func TestInjectionMissingRequiredResource(t *testing.T) {
	sys := NewSystem(&moveSystem{})

	err := sys.Run(NewWorld())
	if err == nil || !strings.Contains(err.Error(), "missing required resource") {
		t.Fatalf("expected a missing resource error, got %v", err)
	}
	if !strings.Contains(err.Error(), "moveSystem") {
		t.Fatalf("expected the error to name the system, got %v", err)
	}
}

func TestInjectionFailureStopsTick(t *testing.T) {
	var trace []string
	stages := WithCoreStages().
		AddSystemToStage(Update, NewSystem(&moveSystem{})).
		AddSystemToStage(Last, &traceSystem{name: "flush", trace: &trace})

	err := stages.Run(NewWorld())
	if err == nil || !strings.Contains(err.Error(), "missing required resource") {
		t.Fatalf("expected a missing resource error, got %v", err)
	}
	if len(trace) != 0 {
		t.Fatalf("expected later systems to be skipped, got %v", trace)
	}
}

type pausableSystem struct {
	_    Without[paused]
	runs int
}

func (s *pausableSystem) Run(w *World) error {
	s.runs++
	return nil
}

func TestWithoutGateSkipsWhileResourcePresent(t *testing.T) {
	w := NewWorld()
	ps := &pausableSystem{}
	sys := NewSystem(ps)

	if err := sys.Run(w); err != nil {
		t.Fatalf("run: %v", err)
	}
	if ps.runs != 1 {
		t.Fatalf("expected a run while the resource is absent")
	}

	InsertResource(w, &paused{})
	if err := sys.Run(w); err != nil {
		t.Fatalf("a gated skip should not error, got %v", err)
	}
	if ps.runs != 1 {
		t.Fatalf("expected a skip while paused")
	}

	RemoveResource[paused](w)
	if err := sys.Run(w); err != nil {
		t.Fatalf("run: %v", err)
	}
	if ps.runs != 2 {
		t.Fatalf("expected runs to resume after unpausing, got %d", ps.runs)
	}
}

type sessionBoundSystem struct {
	_    With[netSession]
	runs int
}

func (s *sessionBoundSystem) Run(w *World) error {
	s.runs++
	return nil
}

func TestWithGateRequiresResource(t *testing.T) {
	w := NewWorld()
	sb := &sessionBoundSystem{}
	sys := NewSystem(sb)

	if err := sys.Run(w); err != nil {
		t.Fatalf("run: %v", err)
	}
	if sb.runs != 0 {
		t.Fatalf("expected a skip while the session is absent")
	}

	InsertResource(w, &netSession{})
	if err := sys.Run(w); err != nil {
		t.Fatalf("run: %v", err)
	}
	if sb.runs != 1 {
		t.Fatalf("expected a run once the session exists, got %d", sb.runs)
	}
}

type gatedInjection struct {
	_     With[netSession]
	Clock *tickClock `wecs:"res"`
	runs  int
}

func (g *gatedInjection) Run(w *World) error {
	g.runs++
	return nil
}

func TestGateCheckedBeforeInjection(t *testing.T) {
	// No session and no clock: the unmet gate skips the run entirely, so
	// the missing required clock never surfaces as an error.
	g := &gatedInjection{}
	sys := NewSystem(g)

	if err := sys.Run(NewWorld()); err != nil {
		t.Fatalf("expected a clean skip, got %v", err)
	}
	if g.runs != 0 {
		t.Fatalf("expected no run behind an unmet gate")
	}
}

type initRecorder struct {
	inited bool
	Clock  *tickClock `wecs:"res"`
}

func (i *initRecorder) Initialize(w *World) {
	i.inited = true
	InsertResource(w, &tickClock{})
}

func (i *initRecorder) Run(w *World) error { return nil }

func TestStructSystemInitializeForwarded(t *testing.T) {
	w := NewWorld()
	ir := &initRecorder{}
	sys := NewSystem(ir)

	sys.Initialize(w)
	if !ir.inited {
		t.Fatalf("expected Initialize to be forwarded to the struct")
	}

	// The resource created during initialize satisfies the required field.
	if err := sys.Run(w); err != nil {
		t.Fatalf("run after initialize: %v", err)
	}
	if ir.Clock == nil {
		t.Fatalf("expected the initialize-created resource to be injected")
	}
}
