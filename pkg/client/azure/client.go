// Package azure wraps the generated KubernetesConfiguration and Resources ARM
// clients behind narrow interfaces so services can be tested against mocks.
//
// The interfaces expose exactly the calls the services need: point reads,
// flattened list enumerations, and Begin* calls returning an [Operation] the
// caller may wait on or abandon (no-wait mode).
package azure

import (
	"context"

	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// Operation is a handle to a remote long-running operation.
type Operation interface {
	// Wait blocks until the operation reaches a terminal state.
	Wait(ctx context.Context) error
}

// FluxConfigurationsAPI is the subset of the fluxConfigurations client used by
// the orchestrator.
type FluxConfigurationsAPI interface {
	Get(ctx context.Context, scope ClusterScope, name string) (
		armkubernetesconfiguration.FluxConfiguration, error)
	List(ctx context.Context, scope ClusterScope) (
		[]*armkubernetesconfiguration.FluxConfiguration, error)
	BeginCreateOrUpdate(ctx context.Context, scope ClusterScope, name string,
		configuration armkubernetesconfiguration.FluxConfiguration) (Operation, error)
	BeginUpdate(ctx context.Context, scope ClusterScope, name string,
		patch armkubernetesconfiguration.FluxConfigurationPatch) (Operation, error)
	BeginDelete(ctx context.Context, scope ClusterScope, name string,
		forceDelete bool) (Operation, error)
}

// ExtensionsAPI is the subset of the cluster extensions client used by the
// prerequisite validator.
type ExtensionsAPI interface {
	List(ctx context.Context, scope ClusterScope) (
		[]*armkubernetesconfiguration.Extension, error)
	BeginCreate(ctx context.Context, scope ClusterScope, name string,
		extension armkubernetesconfiguration.Extension) (Operation, error)
}

// SourceControlConfigurationsAPI enumerates legacy v1 source-control
// configurations, used only for the v1/v2 conflict check.
type SourceControlConfigurationsAPI interface {
	List(ctx context.Context, scope ClusterScope) (
		[]*armkubernetesconfiguration.SourceControlConfiguration, error)
}

// ResourcesAPI reads arbitrary ARM resources by ID, used to resolve the
// cluster resource when attaching an extension identity.
type ResourcesAPI interface {
	GetByID(ctx context.Context, resourceID, apiVersion string) (
		armresources.GenericResource, error)
}

// ProvidersAPI reads resource provider registration state.
type ProvidersAPI interface {
	Get(ctx context.Context, namespace string) (armresources.Provider, error)
}

// Clients bundles the API surfaces a command needs to operate on one subscription.
type Clients struct {
	FluxConfigurations          FluxConfigurationsAPI
	Extensions                  ExtensionsAPI
	SourceControlConfigurations SourceControlConfigurationsAPI
	Resources                   ResourcesAPI
	Providers                   ProvidersAPI
}
