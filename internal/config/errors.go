package config

import "eca/internal/elementary"

// ValidationError reports a single invalid setting. Message is suitable for
// showing to the user next to the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets callers match any validation failure with
// errors.Is(err, elementary.ErrConfiguration).
func (e *ValidationError) Unwrap() error { return elementary.ErrConfiguration }
