package solver

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-bar/internal/economy"
)

var (
	ErrUnknownObject       = economy.ErrUnknownObject
	ErrStalledConstruction = economy.ErrStalledConstruction

	// ErrSchedulerExhausted is returned when nothing in the priority list
	// can be built and the fallback construction fails too
	ErrSchedulerExhausted = errors.New("scheduler exhausted")
)

// BuildError reports which step of a build sequence failed
type BuildError struct {
	Index int
	Name  string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("failed to build %s (step %d): %v", e.Name, e.Index+1, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
