// Package solver drives constructions through an economy: a single
// construction engine, a priority scheduler and a build advisor.
package solver

import (
	"fmt"

	"github.com/napolitain/solver-bar/internal/economy"
	"github.com/napolitain/solver-bar/internal/events"
	"github.com/napolitain/solver-bar/internal/models"
)

// Engine performs single constructions against a catalog. Profiles come
// from the engine catalog and build times from the state, so states are
// expected to share the engine catalog; a name the engine does not know
// is rejected even when the state knows it.
type Engine struct {
	catalog           *models.Catalog
	sink              events.Sink
	minAddTime        float64
	converterFraction float64
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithSink sets the event sink
func WithSink(sink events.Sink) EngineOption {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithMinAddTime sets the fixed start latency of every construction
func WithMinAddTime(t float64) EngineOption {
	return func(e *Engine) {
		e.minAddTime = t
	}
}

// WithConverterFraction sets the energy reserve kept before converting
func WithConverterFraction(f float64) EngineOption {
	return func(e *Engine) {
		e.converterFraction = f
	}
}

// NewEngine creates a construction engine
func NewEngine(catalog *models.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:           catalog,
		sink:              events.Discard,
		minAddTime:        economy.DefaultMinAddTime,
		converterFraction: economy.DefaultConverterFraction,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *models.Catalog {
	return e.catalog
}

// Sink returns the engine's event sink
func (e *Engine) Sink() events.Sink {
	return e.sink
}

// BuildTimes estimates name against state with the engine's settings
func (e *Engine) BuildTimes(state *economy.State, name string) (economy.BuildTimes, error) {
	return state.CalculateBuildTimes(name, economy.WithMinAddTime(e.minAddTime))
}

// Construct builds name on state and returns the state it was built on.
// A theoretical construction runs on a clone and leaves state untouched.
func (e *Engine) Construct(state *economy.State, name string, theoretical bool) (*economy.State, error) {
	p, ok := e.catalog.Get(name)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownObject, name)
		e.fail(state, name, theoretical, err)
		return nil, err
	}

	cur := state
	if theoretical {
		cur = state.Clone()
	}

	bt, err := e.BuildTimes(cur, name)
	if err != nil {
		e.fail(cur, name, theoretical, err)
		return nil, err
	}
	if bt.Stalled {
		err := fmt.Errorf("%w: %s", ErrStalledConstruction, name)
		e.sink.Emit(events.Event{
			Type:        events.EventConstructionFailed,
			Time:        cur.Time,
			Object:      name,
			Snapshot:    cur.Snapshot(),
			BuildTimes:  bt,
			Theoretical: theoretical,
			Err:         err,
		})
		return nil, err
	}

	if bt.EnergyStall() {
		e.stallWarning(cur, name, events.ResourceEnergy, bt, theoretical)
	}
	if bt.MetalStall() {
		e.stallWarning(cur, name, events.ResourceMetal, bt, theoretical)
	}

	// The new converter already counts for its own build interval
	if p.Converter {
		cur.NumberConverters++
	}

	// Metal is paid up front, energy is drawn over the build
	cur.Metal -= p.MetalCost

	var conv economy.Conversion
	if bt.Total > 0 {
		conv = cur.AdvanceTime(bt.Total,
			economy.WithEnergyDraw(p.EnergyCost/bt.Total),
			economy.WithConverterFraction(e.converterFraction),
		)
	} else {
		cur.Energy -= p.EnergyCost
	}
	if conv.Metal > 0 {
		e.sink.Emit(events.Event{
			Type:        events.EventConversion,
			Time:        cur.Time,
			Object:      name,
			Conversion:  conv,
			Theoretical: theoretical,
		})
	}

	cur.Commit(p)

	e.sink.Emit(events.Event{
		Type:        events.EventConstructionCompleted,
		Time:        cur.Time,
		Object:      name,
		Snapshot:    cur.Snapshot(),
		BuildTimes:  bt,
		Theoretical: theoretical,
		Message:     fmt.Sprintf("Completed %s at time %.2f", name, cur.Time),
	})

	return cur, nil
}

func (e *Engine) stallWarning(state *economy.State, name, resource string, bt economy.BuildTimes, theoretical bool) {
	e.sink.Emit(events.Event{
		Type:        events.EventStallWarning,
		Time:        state.Time,
		Object:      name,
		Resource:    resource,
		BuildTimes:  bt,
		Theoretical: theoretical,
		Message:     fmt.Sprintf("%s stall building %s", resource, name),
	})
}

func (e *Engine) fail(state *economy.State, name string, theoretical bool, err error) {
	e.sink.Emit(events.Event{
		Type:        events.EventConstructionFailed,
		Time:        state.Time,
		Object:      name,
		Theoretical: theoretical,
		Err:         err,
	})
}
