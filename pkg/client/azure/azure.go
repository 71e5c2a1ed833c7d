package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	azruntime "github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// NewClients constructs real ARM-backed clients for a subscription using the
// default Azure credential chain.
func NewClients(subscriptionID string, options *arm.ClientOptions) (*Clients, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire Azure credentials: %w", err)
	}

	factory, err := armkubernetesconfiguration.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create KubernetesConfiguration clients: %w", err)
	}

	resourcesClient, err := armresources.NewClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create resources client: %w", err)
	}

	providersClient, err := armresources.NewProvidersClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create providers client: %w", err)
	}

	return &Clients{
		FluxConfigurations:          &fluxConfigurationsClient{inner: factory.NewFluxConfigurationsClient()},
		Extensions:                  &extensionsClient{inner: factory.NewExtensionsClient()},
		SourceControlConfigurations: &sourceControlConfigurationsClient{inner: factory.NewSourceControlConfigurationsClient()},
		Resources:                   &genericResourcesClient{inner: resourcesClient},
		Providers:                   &resourceProvidersClient{inner: providersClient},
	}, nil
}

// operation adapts a typed SDK poller to the Operation interface.
type operation[T any] struct {
	poller *azruntime.Poller[T]
}

// Wait blocks until the remote long-running operation completes.
func (o operation[T]) Wait(ctx context.Context) error {
	_, err := o.poller.PollUntilDone(ctx, nil)
	if err != nil {
		return fmt.Errorf("waiting for operation: %w", err)
	}

	return nil
}

// fluxConfigurationsClient implements FluxConfigurationsAPI over the generated client.
type fluxConfigurationsClient struct {
	inner *armkubernetesconfiguration.FluxConfigurationsClient
}

func (c *fluxConfigurationsClient) Get(
	ctx context.Context, scope ClusterScope, name string,
) (armkubernetesconfiguration.FluxConfiguration, error) {
	resp, err := c.inner.Get(ctx, scope.ResourceGroup, scope.ClusterRP(),
		scope.ClusterType, scope.ClusterName, name, nil)
	if err != nil {
		return armkubernetesconfiguration.FluxConfiguration{},
			fmt.Errorf("failed to get flux configuration %q: %w", name, err)
	}

	return resp.FluxConfiguration, nil
}

func (c *fluxConfigurationsClient) List(
	ctx context.Context, scope ClusterScope,
) ([]*armkubernetesconfiguration.FluxConfiguration, error) {
	var configurations []*armkubernetesconfiguration.FluxConfiguration

	pager := c.inner.NewListPager(scope.ResourceGroup, scope.ClusterRP(),
		scope.ClusterType, scope.ClusterName, nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list flux configurations: %w", err)
		}

		configurations = append(configurations, page.Value...)
	}

	return configurations, nil
}

func (c *fluxConfigurationsClient) BeginCreateOrUpdate(
	ctx context.Context, scope ClusterScope, name string,
	configuration armkubernetesconfiguration.FluxConfiguration,
) (Operation, error) {
	poller, err := c.inner.BeginCreateOrUpdate(ctx, scope.ResourceGroup, scope.ClusterRP(),
		scope.ClusterType, scope.ClusterName, name, configuration, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create flux configuration %q: %w", name, err)
	}

	return operation[armkubernetesconfiguration.FluxConfigurationsClientCreateOrUpdateResponse]{poller: poller}, nil
}

func (c *fluxConfigurationsClient) BeginUpdate(
	ctx context.Context, scope ClusterScope, name string,
	patch armkubernetesconfiguration.FluxConfigurationPatch,
) (Operation, error) {
	poller, err := c.inner.BeginUpdate(ctx, scope.ResourceGroup, scope.ClusterRP(),
		scope.ClusterType, scope.ClusterName, name, patch, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to update flux configuration %q: %w", name, err)
	}

	return operation[armkubernetesconfiguration.FluxConfigurationsClientUpdateResponse]{poller: poller}, nil
}

func (c *fluxConfigurationsClient) BeginDelete(
	ctx context.Context, scope ClusterScope, name string, forceDelete bool,
) (Operation, error) {
	options := &armkubernetesconfiguration.FluxConfigurationsClientBeginDeleteOptions{}
	if forceDelete {
		options.ForceDelete = &forceDelete
	}

	poller, err := c.inner.BeginDelete(ctx, scope.ResourceGroup, scope.ClusterRP(),
		scope.ClusterType, scope.ClusterName, name, options)
	if err != nil {
		return nil, fmt.Errorf("failed to delete flux configuration %q: %w", name, err)
	}

	return operation[armkubernetesconfiguration.FluxConfigurationsClientDeleteResponse]{poller: poller}, nil
}

// extensionsClient implements ExtensionsAPI over the generated client.
type extensionsClient struct {
	inner *armkubernetesconfiguration.ExtensionsClient
}

func (c *extensionsClient) List(
	ctx context.Context, scope ClusterScope,
) ([]*armkubernetesconfiguration.Extension, error) {
	var extensions []*armkubernetesconfiguration.Extension

	pager := c.inner.NewListPager(scope.ResourceGroup, scope.ClusterRP(),
		scope.ClusterType, scope.ClusterName, nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list cluster extensions: %w", err)
		}

		extensions = append(extensions, page.Value...)
	}

	return extensions, nil
}

func (c *extensionsClient) BeginCreate(
	ctx context.Context, scope ClusterScope, name string,
	extension armkubernetesconfiguration.Extension,
) (Operation, error) {
	poller, err := c.inner.BeginCreate(ctx, scope.ResourceGroup, scope.ClusterRP(),
		scope.ClusterType, scope.ClusterName, name, extension, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create extension %q: %w", name, err)
	}

	return operation[armkubernetesconfiguration.ExtensionsClientCreateResponse]{poller: poller}, nil
}

// sourceControlConfigurationsClient implements SourceControlConfigurationsAPI.
type sourceControlConfigurationsClient struct {
	inner *armkubernetesconfiguration.SourceControlConfigurationsClient
}

func (c *sourceControlConfigurationsClient) List(
	ctx context.Context, scope ClusterScope,
) ([]*armkubernetesconfiguration.SourceControlConfiguration, error) {
	var configurations []*armkubernetesconfiguration.SourceControlConfiguration

	pager := c.inner.NewListPager(scope.ResourceGroup, scope.ClusterRP(),
		scope.ClusterType, scope.ClusterName, nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list source control configurations: %w", err)
		}

		configurations = append(configurations, page.Value...)
	}

	return configurations, nil
}

// genericResourcesClient implements ResourcesAPI over the generic resources client.
type genericResourcesClient struct {
	inner *armresources.Client
}

func (c *genericResourcesClient) GetByID(
	ctx context.Context, resourceID, apiVersion string,
) (armresources.GenericResource, error) {
	resp, err := c.inner.GetByID(ctx, resourceID, apiVersion, nil)
	if err != nil {
		return armresources.GenericResource{},
			fmt.Errorf("failed to get resource %s: %w", resourceID, err)
	}

	return resp.GenericResource, nil
}

// resourceProvidersClient implements ProvidersAPI over the providers client.
type resourceProvidersClient struct {
	inner *armresources.ProvidersClient
}

func (c *resourceProvidersClient) Get(
	ctx context.Context, namespace string,
) (armresources.Provider, error) {
	resp, err := c.inner.Get(ctx, namespace, nil)
	if err != nil {
		return armresources.Provider{},
			fmt.Errorf("failed to get resource provider %s: %w", namespace, err)
	}

	return resp.Provider, nil
}
