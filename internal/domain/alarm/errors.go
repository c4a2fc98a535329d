package alarm

import "errors"

var (
	// ErrInvalidConfig reports a malformed or semantically invalid alarm configuration.
	ErrInvalidConfig = errors.New("invalid alarm configuration")
	// ErrAdapter reports a failure of the LED strip driver.
	ErrAdapter = errors.New("strip adapter failure")
	// ErrNegativeDelay reports that a resolved occurrence lies in the past.
	ErrNegativeDelay = errors.New("next occurrence is in the past")
	// ErrNoOccurrence reports that no occurrence exists inside the search window.
	ErrNoOccurrence = errors.New("no upcoming occurrence")
)
