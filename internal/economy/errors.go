package economy

import "errors"

var (
	// ErrUnknownObject is returned when a name is not in the catalog
	ErrUnknownObject = errors.New("unknown object")

	// ErrStalledConstruction is returned when a required rate is zero while
	// a cost deficit exists, so the construction can never finish
	ErrStalledConstruction = errors.New("construction permanently stalled")
)
