package fluxconfig

import "errors"

// Common errors for flux configuration operations.
var (
	// ErrConfigurationNotFound is returned when the named flux configuration
	// does not exist on the cluster.
	ErrConfigurationNotFound = errors.New("flux configuration not found")

	// ErrClusterNotFound is returned when the target cluster resource does not exist.
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrKustomizationExists is returned when creating a kustomization whose
	// name is already present in the configuration.
	ErrKustomizationExists = errors.New("kustomization already exists")

	// ErrKustomizationNotFound is returned when the named kustomization is
	// absent from the configuration.
	ErrKustomizationNotFound = errors.New("kustomization not found")

	// ErrDuplicateKustomization is returned when the supplied kustomization
	// list contains the same name twice.
	ErrDuplicateKustomization = errors.New("duplicate kustomization name")

	// ErrInvalidScope is returned when the scope flag is neither cluster nor namespace.
	ErrInvalidScope = errors.New("invalid scope")

	// ErrAborted is returned when the user declines a confirmation prompt.
	ErrAborted = errors.New("operation cancelled")
)
