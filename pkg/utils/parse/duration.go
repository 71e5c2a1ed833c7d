package parse

import (
	"fmt"
	"time"
)

// Duration parses a human-readable duration token (e.g. "30s", "5m", "1h")
// into whole seconds. An empty input yields nil, signaling the field should be
// omitted from the request.
func Duration(value string) (*int64, error) {
	if value == "" {
		return nil, nil //nolint:nilnil // nil means "field omitted" on the wire.
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDuration, value)
	}

	seconds := int64(duration.Seconds())

	return &seconds, nil
}

// ValidateDuration checks that a duration flag holds a valid duration token,
// surfacing the offending flag name in the error.
func ValidateDuration(flagName, value string) error {
	if value == "" {
		return nil
	}

	_, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%w: %s must be a valid duration such as 30s, 5m or 1h, got %q",
			ErrInvalidDuration, flagName, value)
	}

	return nil
}
