package solver

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-bar/internal/economy"
	"github.com/napolitain/solver-bar/internal/events"
	"github.com/napolitain/solver-bar/internal/models"
)

const (
	// DefaultWaitStep is how long the scheduler idles when nothing was built
	DefaultWaitStep = 1.0

	// DefaultMaxPasses bounds the priority loop
	DefaultMaxPasses = 100000
)

// Scheduler drives sequences and priority lists through an Engine
type Scheduler struct {
	engine    *Engine
	fallback  string
	waitStep  float64
	maxPasses int
}

// SchedulerOption configures a Scheduler
type SchedulerOption func(*Scheduler)

// WithFallback sets the object built when every priority would stall
func WithFallback(name string) SchedulerOption {
	return func(s *Scheduler) {
		if name != "" {
			s.fallback = name
		}
	}
}

// WithWaitStep sets the idle step used when nothing could be built
func WithWaitStep(step float64) SchedulerOption {
	return func(s *Scheduler) {
		if step > 0 {
			s.waitStep = step
		}
	}
}

// WithMaxPasses bounds the number of priority scans
func WithMaxPasses(n int) SchedulerOption {
	return func(s *Scheduler) {
		if n > 0 {
			s.maxPasses = n
		}
	}
}

// NewScheduler creates a scheduler using engine for every construction
func NewScheduler(engine *Engine, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		engine:    engine,
		fallback:  models.Wind,
		waitStep:  DefaultWaitStep,
		maxPasses: DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fallback returns the fallback object name
func (s *Scheduler) Fallback() string {
	return s.fallback
}

// SequenceResult lists what a build sequence completed
type SequenceResult struct {
	Built []string
}

// BuildSequence constructs names in order and stops at the first failure
func (s *Scheduler) BuildSequence(state *economy.State, names []string) (SequenceResult, error) {
	var result SequenceResult
	for i, name := range names {
		if _, err := s.engine.Construct(state, name, false); err != nil {
			return result, &BuildError{Index: i, Name: name, Err: err}
		}
		result.Built = append(result.Built, name)
	}
	return result, nil
}

// PriorityResult summarizes a priority run
type PriorityResult struct {
	Built     []string
	Fallbacks int
	Waits     int
	Passes    int
}

// BuildWithPriorities repeatedly builds the first priority that would not
// stall until the state reaches endTime. When every priority would stall
// it builds the fallback object instead; when the fallback fails too it
// returns ErrSchedulerExhausted.
func (s *Scheduler) BuildWithPriorities(state *economy.State, priorities []string, endTime float64) (PriorityResult, error) {
	var result PriorityResult
	sink := s.engine.Sink()

	for state.Time < endTime {
		if result.Passes >= s.maxPasses {
			return result, fmt.Errorf("%w: no progress after %d passes", ErrSchedulerExhausted, result.Passes)
		}
		result.Passes++

		builtSomething := false
		allWouldStall := true

		for _, name := range priorities {
			bt, err := s.engine.BuildTimes(state, name)
			if errors.Is(err, ErrUnknownObject) {
				sink.Emit(events.Event{
					Type:    events.EventSchedulerSkipped,
					Time:    state.Time,
					Object:  name,
					Err:     err,
					Message: fmt.Sprintf("Unknown object type %s in priority list", name),
				})
				continue
			}
			if err != nil || bt.Stalled || bt.WouldStall() {
				continue
			}

			allWouldStall = false
			if _, err := s.engine.Construct(state, name, false); err == nil {
				result.Built = append(result.Built, name)
				builtSomething = true
				break // restart from the top of the list
			}
		}

		if builtSomething {
			continue
		}

		if allWouldStall {
			sink.Emit(events.Event{
				Type:    events.EventSchedulerFallback,
				Time:    state.Time,
				Object:  s.fallback,
				Message: fmt.Sprintf("All priority options would stall, building %s instead", s.fallback),
			})
			if _, err := s.engine.Construct(state, s.fallback, false); err != nil {
				err = fmt.Errorf("%w: fallback %s failed: %w", ErrSchedulerExhausted, s.fallback, err)
				sink.Emit(events.Event{
					Type:     events.EventSchedulerExhausted,
					Time:     state.Time,
					Object:   s.fallback,
					Snapshot: state.Snapshot(),
					Err:      err,
				})
				return result, err
			}
			result.Built = append(result.Built, s.fallback)
			result.Fallbacks++
			continue
		}

		sink.Emit(events.Event{
			Type:    events.EventSchedulerWait,
			Time:    state.Time,
			Message: "No priority objects buildable right now, waiting",
		})
		state.AdvanceTime(s.waitStep)
		result.Waits++
	}

	return result, nil
}

// CatchUpResult describes a catch-up comparison
type CatchUpResult struct {
	Younger *economy.State
	Older   *economy.State
	Built   int

	// Stopped is the construction error that ended catch-up early, if any
	Stopped error
}

// CatchUp makes whichever of a and b is behind in time build name until
// it reaches the other's time or a construction fails. A failed
// construction ends catch-up and is reported in Stopped.
func (s *Scheduler) CatchUp(a, b *economy.State, name string) CatchUpResult {
	if name == "" {
		name = s.fallback
	}

	younger, older := b, a
	if a.Time < b.Time {
		younger, older = a, b
	}
	result := CatchUpResult{Younger: younger, Older: older}

	for younger.Time < older.Time {
		if _, err := s.engine.Construct(younger, name, false); err != nil {
			result.Stopped = &BuildError{Index: result.Built, Name: name, Err: err}
			break
		}
		result.Built++
	}
	return result
}
