package simulation

import "errors"

// Scenario validation errors
var (
	// ErrEmptyScenario is returned when a scenario document contains nothing.
	ErrEmptyScenario = errors.New("scenario is empty")

	// ErrDuplicateKey is returned when two members or two laws share a key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnknownMember is returned when a law or step names a member key
	// that the scenario does not define.
	ErrUnknownMember = errors.New("unknown member")

	// ErrUnknownLaw is returned when a step names a law key that the
	// scenario does not define.
	ErrUnknownLaw = errors.New("unknown law")

	// ErrUnknownOperation is returned for a step whose op is not recognised.
	ErrUnknownOperation = errors.New("unknown operation")
)
