package parse

import "errors"

// Common errors for argument parsing.
var (
	// ErrInvalidDuration is returned when a duration flag value is not a valid duration token.
	ErrInvalidDuration = errors.New("invalid duration format")

	// ErrInvalidDependencies is returned when a dependency list cannot be parsed.
	ErrInvalidDependencies = errors.New("invalid dependency list")

	// ErrMutuallyExclusiveArguments is returned when both an inline value and a
	// file path are supplied for the same input.
	ErrMutuallyExclusiveArguments = errors.New("mutually exclusive arguments")

	// ErrInvalidKustomization is returned when a kustomization flag value is malformed.
	ErrInvalidKustomization = errors.New("invalid kustomization definition")
)
