package prereq

import "errors"

// Common errors for cluster-level prerequisite checks.
var (
	// ErrLegacyConfigurationExists is returned when a v1 source-control
	// configuration is present on the cluster. v1 and v2 configurations are
	// mutually exclusive on one cluster.
	ErrLegacyConfigurationExists = errors.New("a v1 source control configuration already exists on the cluster")

	// ErrExtensionCreating is returned when the flux extension is still installing.
	ErrExtensionCreating = errors.New("the flux extension is still installing")

	// ErrExtensionUnhealthy is returned when the flux extension is in a
	// non-succeeded terminal state.
	ErrExtensionUnhealthy = errors.New("the flux extension is in an unexpected state")
)
