package elementary

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the parent of every error caused by a bad rule table or
// initial row. Callers at the input boundary match it with errors.Is.
var ErrConfiguration = errors.New("invalid automaton configuration")

var (
	ErrIncompleteRule = fmt.Errorf("%w: incomplete rule table", ErrConfiguration)
	ErrInvalidCell    = fmt.Errorf("%w: invalid cell state", ErrConfiguration)
	ErrEmptyRow       = fmt.Errorf("%w: initial row is empty", ErrConfiguration)
	ErrRowCapacity    = fmt.Errorf("%w: row capacity must be at least 1", ErrConfiguration)
)

var (
	// ErrNotConfigured is returned by Advance before the first Reconfigure.
	ErrNotConfigured = errors.New("automaton is not configured")
	// ErrExhausted is returned by Advance once the row capacity is reached.
	ErrExhausted = errors.New("automaton has produced all configured rows")
)

func invalidCellAt(i int, c Cell) error {
	return fmt.Errorf("%w: cell %d has state %d", ErrInvalidCell, i, c)
}
