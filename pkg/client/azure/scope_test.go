package azure_test

import (
	"testing"

	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScope(t *testing.T, clusterType string) azure.ClusterScope {
	t.Helper()

	scope, err := azure.NewClusterScope("0000-1111", "my-rg", clusterType, "my-cluster")
	require.NoError(t, err)

	return scope
}

func TestNewClusterScope_ConnectedClusters(t *testing.T) {
	t.Parallel()

	scope := newTestScope(t, "connectedClusters")

	assert.Equal(t, azure.ConnectedRPNamespace, scope.ClusterRP())
	assert.Equal(t, azure.ClusterTypeConnectedClusters, scope.ClusterType)
	assert.Equal(t, "2021-10-01", scope.ParentAPIVersion())
}

func TestNewClusterScope_ManagedClusters(t *testing.T) {
	t.Parallel()

	scope := newTestScope(t, "managedClusters")

	assert.Equal(t, azure.ManagedRPNamespace, scope.ClusterRP())
	assert.Equal(t, "2022-03-01", scope.ParentAPIVersion())
}

func TestNewClusterScope_CaseInsensitive(t *testing.T) {
	t.Parallel()

	scope := newTestScope(t, "CONNECTEDCLUSTERS")

	// The canonical casing is restored regardless of input casing.
	assert.Equal(t, azure.ClusterTypeConnectedClusters, scope.ClusterType)
}

func TestNewClusterScope_UnknownTypeRejected(t *testing.T) {
	t.Parallel()

	_, err := azure.NewClusterScope("0000-1111", "my-rg", "provisionedClusters", "my-cluster")
	require.ErrorIs(t, err, azure.ErrUnsupportedClusterType)
}

func TestClusterScope_ResourceID(t *testing.T) {
	t.Parallel()

	scope := newTestScope(t, "connectedClusters")

	assert.Equal(t,
		"/subscriptions/0000-1111/resourceGroups/my-rg/providers/"+
			"Microsoft.Kubernetes/connectedClusters/my-cluster",
		scope.ResourceID())
}

func TestClusterScope_ConfigurationID(t *testing.T) {
	t.Parallel()

	scope := newTestScope(t, "managedClusters")

	assert.Equal(t,
		"Microsoft.ContainerService/managedClusters/my-cluster/"+
			"Microsoft.KubernetesConfiguration/fluxConfigurations/gitops",
		scope.ConfigurationID("gitops"))
}
