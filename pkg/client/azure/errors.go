package azure

import "errors"

// Common errors for the Azure client layer.
var (
	// ErrUnsupportedClusterType is returned when the cluster type is neither
	// connectedClusters nor managedClusters.
	ErrUnsupportedClusterType = errors.New("unsupported cluster type")

	// ErrProviderNotRegistered is returned when the subscription is not
	// registered for the Microsoft.KubernetesConfiguration resource provider.
	ErrProviderNotRegistered = errors.New("resource provider is not registered")
)
