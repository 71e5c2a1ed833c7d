package azure

import (
	"fmt"
	"strings"
)

// Cluster types accepted by the CLI and their resource providers.
const (
	// ClusterTypeConnectedClusters identifies Azure Arc-enabled clusters.
	ClusterTypeConnectedClusters = "connectedClusters"
	// ClusterTypeManagedClusters identifies AKS clusters.
	ClusterTypeManagedClusters = "managedClusters"

	// ConnectedRPNamespace is the resource provider for Arc-enabled clusters.
	ConnectedRPNamespace = "Microsoft.Kubernetes"
	// ManagedRPNamespace is the resource provider for AKS clusters.
	ManagedRPNamespace = "Microsoft.ContainerService"

	// ConfigurationRPNamespace is the resource provider hosting flux
	// configurations and cluster extensions.
	ConfigurationRPNamespace = "Microsoft.KubernetesConfiguration"

	connectedClusterAPIVersion = "2021-10-01"
	managedClusterAPIVersion   = "2022-03-01"
)

// ClusterScope is the immutable identity of a target cluster. All operations
// receive the scope explicitly instead of reading it from ambient state.
type ClusterScope struct {
	SubscriptionID string
	ResourceGroup  string
	ClusterType    string
	ClusterName    string

	clusterRP        string
	parentAPIVersion string
}

// NewClusterScope builds a ClusterScope, resolving the cluster resource
// provider from the cluster type. Unknown cluster types are rejected here so
// later calls never carry an unresolvable identity.
func NewClusterScope(subscriptionID, resourceGroup, clusterType, clusterName string) (ClusterScope, error) {
	scope := ClusterScope{
		SubscriptionID: subscriptionID,
		ResourceGroup:  resourceGroup,
		ClusterType:    clusterType,
		ClusterName:    clusterName,
	}

	switch {
	case strings.EqualFold(clusterType, ClusterTypeConnectedClusters):
		scope.ClusterType = ClusterTypeConnectedClusters
		scope.clusterRP = ConnectedRPNamespace
		scope.parentAPIVersion = connectedClusterAPIVersion
	case strings.EqualFold(clusterType, ClusterTypeManagedClusters):
		scope.ClusterType = ClusterTypeManagedClusters
		scope.clusterRP = ManagedRPNamespace
		scope.parentAPIVersion = managedClusterAPIVersion
	default:
		return ClusterScope{}, fmt.Errorf("%w: %q", ErrUnsupportedClusterType, clusterType)
	}

	return scope, nil
}

// ClusterRP returns the resource provider namespace of the cluster resource.
func (s ClusterScope) ClusterRP() string {
	return s.clusterRP
}

// ParentAPIVersion returns the API version used to read the cluster resource itself.
func (s ClusterScope) ParentAPIVersion() string {
	return s.parentAPIVersion
}

// ResourceID returns the fully qualified ARM resource ID of the cluster.
func (s ClusterScope) ResourceID() string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s/%s",
		s.SubscriptionID, s.ResourceGroup, s.clusterRP, s.ClusterType, s.ClusterName)
}

// ConfigurationID returns the ARM resource path of a flux configuration on the
// cluster, used in user-facing messages.
func (s ClusterScope) ConfigurationID(name string) string {
	return fmt.Sprintf("%s/%s/%s/%s/fluxConfigurations/%s",
		s.clusterRP, s.ClusterType, s.ClusterName, ConfigurationRPNamespace, name)
}
