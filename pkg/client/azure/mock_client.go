package azure

import (
	"context"

	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/stretchr/testify/mock"
)

// MockOperation is a mock implementation of the Operation interface for testing.
type MockOperation struct {
	mock.Mock
}

// NewMockOperation creates a new MockOperation instance.
func NewMockOperation() *MockOperation {
	return &MockOperation{}
}

// Wait mocks blocking on a long-running operation.
func (m *MockOperation) Wait(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// MockFluxConfigurationsAPI is a mock implementation of FluxConfigurationsAPI for testing.
type MockFluxConfigurationsAPI struct {
	mock.Mock
}

// NewMockFluxConfigurationsAPI creates a new MockFluxConfigurationsAPI instance.
func NewMockFluxConfigurationsAPI() *MockFluxConfigurationsAPI {
	return &MockFluxConfigurationsAPI{}
}

// Get mocks fetching a flux configuration.
func (m *MockFluxConfigurationsAPI) Get(
	ctx context.Context, scope ClusterScope, name string,
) (armkubernetesconfiguration.FluxConfiguration, error) {
	args := m.Called(ctx, scope, name)

	result, ok := args.Get(0).(armkubernetesconfiguration.FluxConfiguration)
	if !ok {
		return armkubernetesconfiguration.FluxConfiguration{}, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// List mocks enumerating flux configurations.
func (m *MockFluxConfigurationsAPI) List(
	ctx context.Context, scope ClusterScope,
) ([]*armkubernetesconfiguration.FluxConfiguration, error) {
	args := m.Called(ctx, scope)

	result, ok := args.Get(0).([]*armkubernetesconfiguration.FluxConfiguration)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// BeginCreateOrUpdate mocks starting a create-or-update operation.
func (m *MockFluxConfigurationsAPI) BeginCreateOrUpdate(
	ctx context.Context, scope ClusterScope, name string,
	configuration armkubernetesconfiguration.FluxConfiguration,
) (Operation, error) {
	args := m.Called(ctx, scope, name, configuration)

	result, ok := args.Get(0).(Operation)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// BeginUpdate mocks starting a patch operation.
func (m *MockFluxConfigurationsAPI) BeginUpdate(
	ctx context.Context, scope ClusterScope, name string,
	patch armkubernetesconfiguration.FluxConfigurationPatch,
) (Operation, error) {
	args := m.Called(ctx, scope, name, patch)

	result, ok := args.Get(0).(Operation)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// BeginDelete mocks starting a delete operation.
func (m *MockFluxConfigurationsAPI) BeginDelete(
	ctx context.Context, scope ClusterScope, name string, forceDelete bool,
) (Operation, error) {
	args := m.Called(ctx, scope, name, forceDelete)

	result, ok := args.Get(0).(Operation)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// MockExtensionsAPI is a mock implementation of ExtensionsAPI for testing.
type MockExtensionsAPI struct {
	mock.Mock
}

// NewMockExtensionsAPI creates a new MockExtensionsAPI instance.
func NewMockExtensionsAPI() *MockExtensionsAPI {
	return &MockExtensionsAPI{}
}

// List mocks enumerating cluster extensions.
func (m *MockExtensionsAPI) List(
	ctx context.Context, scope ClusterScope,
) ([]*armkubernetesconfiguration.Extension, error) {
	args := m.Called(ctx, scope)

	result, ok := args.Get(0).([]*armkubernetesconfiguration.Extension)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// BeginCreate mocks starting an extension create operation.
func (m *MockExtensionsAPI) BeginCreate(
	ctx context.Context, scope ClusterScope, name string,
	extension armkubernetesconfiguration.Extension,
) (Operation, error) {
	args := m.Called(ctx, scope, name, extension)

	result, ok := args.Get(0).(Operation)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// MockSourceControlConfigurationsAPI is a mock implementation of
// SourceControlConfigurationsAPI for testing.
type MockSourceControlConfigurationsAPI struct {
	mock.Mock
}

// NewMockSourceControlConfigurationsAPI creates a new MockSourceControlConfigurationsAPI instance.
func NewMockSourceControlConfigurationsAPI() *MockSourceControlConfigurationsAPI {
	return &MockSourceControlConfigurationsAPI{}
}

// List mocks enumerating legacy source control configurations.
func (m *MockSourceControlConfigurationsAPI) List(
	ctx context.Context, scope ClusterScope,
) ([]*armkubernetesconfiguration.SourceControlConfiguration, error) {
	args := m.Called(ctx, scope)

	result, ok := args.Get(0).([]*armkubernetesconfiguration.SourceControlConfiguration)
	if !ok {
		return nil, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// MockResourcesAPI is a mock implementation of ResourcesAPI for testing.
type MockResourcesAPI struct {
	mock.Mock
}

// NewMockResourcesAPI creates a new MockResourcesAPI instance.
func NewMockResourcesAPI() *MockResourcesAPI {
	return &MockResourcesAPI{}
}

// GetByID mocks reading an arbitrary ARM resource.
func (m *MockResourcesAPI) GetByID(
	ctx context.Context, resourceID, apiVersion string,
) (armresources.GenericResource, error) {
	args := m.Called(ctx, resourceID, apiVersion)

	result, ok := args.Get(0).(armresources.GenericResource)
	if !ok {
		return armresources.GenericResource{}, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

// MockProvidersAPI is a mock implementation of ProvidersAPI for testing.
type MockProvidersAPI struct {
	mock.Mock
}

// NewMockProvidersAPI creates a new MockProvidersAPI instance.
func NewMockProvidersAPI() *MockProvidersAPI {
	return &MockProvidersAPI{}
}

// Get mocks reading resource provider registration state.
func (m *MockProvidersAPI) Get(
	ctx context.Context, namespace string,
) (armresources.Provider, error) {
	args := m.Called(ctx, namespace)

	result, ok := args.Get(0).(armresources.Provider)
	if !ok {
		return armresources.Provider{}, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
	}

	return result, args.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}
