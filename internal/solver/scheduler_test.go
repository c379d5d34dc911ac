package solver

import (
	"errors"
	"reflect"
	"testing"

	"github.com/napolitain/solver-bar/internal/economy"
	"github.com/napolitain/solver-bar/internal/events"
	"github.com/napolitain/solver-bar/internal/models"
)

func TestBuildSequence(t *testing.T) {
	engine, state := newTestEngine(events.NewRecorder())
	scheduler := NewScheduler(engine)

	result, err := scheduler.BuildSequence(state, []string{models.Mex, models.Mex, models.Solar})
	if err != nil {
		t.Fatalf("BuildSequence: %v", err)
	}
	if len(result.Built) != 3 {
		t.Errorf("Expected 3 built, got %v", result.Built)
	}
	if len(state.History) != 3 || state.History[2].Name != models.Solar {
		t.Errorf("Unexpected history %v", state.History)
	}
}

func TestBuildSequenceStopsAtFailure(t *testing.T) {
	engine, state := newTestEngine(events.NewRecorder())
	scheduler := NewScheduler(engine)

	result, err := scheduler.BuildSequence(state, []string{models.Mex, "Nope", models.Wind})

	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("Expected *BuildError, got %v", err)
	}
	if buildErr.Index != 1 || buildErr.Name != "Nope" {
		t.Errorf("Expected failure at 1/Nope, got %d/%s", buildErr.Index, buildErr.Name)
	}
	if !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Expected ErrUnknownObject in chain, got %v", err)
	}
	if len(result.Built) != 1 || result.Built[0] != models.Mex {
		t.Errorf("Expected only Mex built, got %v", result.Built)
	}
	if len(state.History) != 1 {
		t.Errorf("Wind should not have been built, history %v", state.History)
	}
}

func TestPrioritiesEmptyListBuildsFallback(t *testing.T) {
	rec := events.NewRecorder()
	engine, state := newTestEngine(rec)
	scheduler := NewScheduler(engine)

	// Wind takes 1600/300 + 1 seconds: 3 -> 9.33 -> 15.67 -> 22
	result, err := scheduler.BuildWithPriorities(state, nil, 20)
	if err != nil {
		t.Fatalf("BuildWithPriorities: %v", err)
	}

	if result.Fallbacks != 3 || result.Passes != 3 {
		t.Errorf("Expected 3 fallbacks in 3 passes, got %d in %d", result.Fallbacks, result.Passes)
	}
	for _, name := range result.Built {
		if name != models.Wind {
			t.Errorf("Expected only Wind, got %v", result.Built)
			break
		}
	}
	if rec.Count(events.EventSchedulerFallback) != result.Fallbacks {
		t.Errorf("Expected %d fallback events, got %d", result.Fallbacks, rec.Count(events.EventSchedulerFallback))
	}
	if state.Time < 20 {
		t.Errorf("Expected time >= 20, got %v", state.Time)
	}
}

func TestPrioritiesPreferListOrder(t *testing.T) {
	engine, state := newTestEngine(events.NewRecorder())
	scheduler := NewScheduler(engine)

	result, err := scheduler.BuildWithPriorities(state, []string{models.Mex, models.Wind}, 30)
	if err != nil {
		t.Fatalf("BuildWithPriorities: %v", err)
	}

	if len(result.Built) < 2 || result.Built[0] != models.Mex || result.Built[1] != models.Mex {
		t.Errorf("Expected to open with two Mex, got %v", result.Built)
	}
	if state.Time < 30 {
		t.Errorf("Expected time >= 30, got %v", state.Time)
	}
	if len(state.History) != len(result.Built) {
		t.Errorf("History %d does not match built %d", len(state.History), len(result.Built))
	}
}

func TestPrioritiesFallbackOnStall(t *testing.T) {
	rec := events.NewRecorder()
	engine, state := newTestEngine(rec)
	scheduler := NewScheduler(engine)

	// Mex wants 500 energy; at 50 energy and 25/s it would stall
	state.Energy = 50
	result, err := scheduler.BuildWithPriorities(state, []string{models.Mex}, state.Time+1)
	if err != nil {
		t.Fatalf("BuildWithPriorities: %v", err)
	}

	if len(result.Built) != 1 || result.Built[0] != models.Wind {
		t.Errorf("Expected a single Wind fallback, got %v", result.Built)
	}
	if result.Fallbacks != 1 {
		t.Errorf("Expected 1 fallback, got %d", result.Fallbacks)
	}
}

func TestPrioritiesSkipUnknownNames(t *testing.T) {
	rec := events.NewRecorder()
	engine, state := newTestEngine(rec)
	scheduler := NewScheduler(engine)

	result, err := scheduler.BuildWithPriorities(state, []string{"Nope", models.Mex}, state.Time+1)
	if err != nil {
		t.Fatalf("BuildWithPriorities: %v", err)
	}

	if len(result.Built) != 1 || result.Built[0] != models.Mex {
		t.Errorf("Expected Mex built past the unknown name, got %v", result.Built)
	}
	if rec.Count(events.EventSchedulerSkipped) != 1 {
		t.Errorf("Expected 1 skipped event, got %d", rec.Count(events.EventSchedulerSkipped))
	}
}

func TestPrioritiesExhausted(t *testing.T) {
	rec := events.NewRecorder()
	engine, state := newTestEngine(rec)
	scheduler := NewScheduler(engine)

	state.Energy = 0
	state.EnergyPerSecond = 0

	_, err := scheduler.BuildWithPriorities(state, []string{models.Mex}, 100)
	if !errors.Is(err, ErrSchedulerExhausted) {
		t.Errorf("Expected ErrSchedulerExhausted, got %v", err)
	}
	if !errors.Is(err, ErrStalledConstruction) {
		t.Errorf("Expected the fallback stall in the chain, got %v", err)
	}
	if rec.Count(events.EventSchedulerExhausted) != 1 {
		t.Errorf("Expected 1 exhausted event, got %d", rec.Count(events.EventSchedulerExhausted))
	}
}

func TestPrioritiesWaitWhenConstructFails(t *testing.T) {
	full := models.DefaultCatalog()
	var profiles []models.ObjectProfile
	full.Each(func(p models.ObjectProfile) {
		if p.Name != models.Mex {
			profiles = append(profiles, p)
		}
	})
	partial, err := models.NewCatalog(profiles...)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	// The state knows Mex but the engine cannot build it
	rec := events.NewRecorder()
	scheduler := NewScheduler(NewEngine(partial, WithSink(rec)))
	state := economy.NewDefaultState(full)

	result, err := scheduler.BuildWithPriorities(state, []string{models.Mex}, state.Time+3)
	if err != nil {
		t.Fatalf("BuildWithPriorities: %v", err)
	}
	if result.Waits != 3 {
		t.Errorf("Expected 3 waits, got %d", result.Waits)
	}
	if len(result.Built) != 0 {
		t.Errorf("Expected nothing built, got %v", result.Built)
	}
	if rec.Count(events.EventSchedulerWait) != 3 {
		t.Errorf("Expected 3 wait events, got %d", rec.Count(events.EventSchedulerWait))
	}
}

func TestPrioritiesPassGuard(t *testing.T) {
	catalog, err := models.NewCatalog(
		models.ObjectProfile{Name: "Boss", Kind: models.Unit, BuildpowerIncome: 300},
		models.ObjectProfile{Name: "Free"},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	engine := NewEngine(catalog, WithMinAddTime(0))
	scheduler := NewScheduler(engine, WithMaxPasses(50), WithFallback("Free"))
	sc := economy.DefaultScenario()
	sc.Builders = []string{"Boss"}
	state := economy.NewState(catalog, sc)

	result, err := scheduler.BuildWithPriorities(state, []string{"Free"}, 10)
	if !errors.Is(err, ErrSchedulerExhausted) {
		t.Fatalf("Expected ErrSchedulerExhausted, got %v", err)
	}
	if result.Passes != 50 {
		t.Errorf("Expected 50 passes, got %d", result.Passes)
	}
}

func TestCatchUp(t *testing.T) {
	engine, a := newTestEngine(events.NewRecorder())
	scheduler := NewScheduler(engine)

	b := a.Clone()
	if _, err := scheduler.BuildSequence(b, []string{models.Mex, models.Mex}); err != nil {
		t.Fatalf("BuildSequence: %v", err)
	}

	result := scheduler.CatchUp(b, a, "")
	if result.Stopped != nil {
		t.Fatalf("CatchUp stopped: %v", result.Stopped)
	}
	if result.Younger != a || result.Older != b {
		t.Error("Expected a to be the younger state")
	}
	if result.Built == 0 {
		t.Error("Expected at least one construction")
	}
	if a.Time < b.Time {
		t.Errorf("Expected a (%v) to reach b (%v)", a.Time, b.Time)
	}
	for _, c := range a.History {
		if c.Name != models.Wind {
			t.Errorf("Expected only Wind in catch-up history, got %v", a.History)
			break
		}
	}
}

func TestCatchUpStopsOnFailedConstruction(t *testing.T) {
	engine, younger := newTestEngine(events.NewRecorder())
	scheduler := NewScheduler(engine)

	// Wind can never be paid for without energy income
	younger.Energy = 0
	younger.EnergyPerSecond = 0
	older := younger.Clone()
	older.Time = 50
	before := younger.Clone()

	result := scheduler.CatchUp(younger, older, "")

	if result.Younger != younger || result.Older != older {
		t.Error("Expected younger and older to be identified")
	}
	if result.Built != 0 {
		t.Errorf("Expected nothing built, got %d", result.Built)
	}
	if !errors.Is(result.Stopped, ErrStalledConstruction) {
		t.Errorf("Expected stall as stop reason, got %v", result.Stopped)
	}
	var buildErr *BuildError
	if !errors.As(result.Stopped, &buildErr) || buildErr.Name != models.Wind {
		t.Errorf("Expected *BuildError for Wind, got %v", result.Stopped)
	}
	if !reflect.DeepEqual(younger, before) {
		t.Error("Failed catch-up mutated the younger state")
	}
}

func BenchmarkBuildWithPriorities(b *testing.B) {
	catalog := models.DefaultCatalog()
	engine := NewEngine(catalog)
	scheduler := NewScheduler(engine)
	priorities := []string{models.BotWorker, models.Mex, models.Solar, models.Wind}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		state := economy.NewDefaultState(catalog)
		if _, err := scheduler.BuildWithPriorities(state, priorities, 600); err != nil {
			b.Fatal(err)
		}
	}
}
