// Package fluxconfig orchestrates flux configuration lifecycle operations
// against the KubernetesConfiguration resource provider.
//
// The remote resource is the single source of truth: every mutation is a
// fresh read followed by a create or patch call. The service offers no
// concurrency token, so two concurrent writers race and the later write wins
// (field-level for patches, whole-key for kustomization entries). This is a
// known consistency gap of the remote API, not something the client works
// around.
package fluxconfig

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/arcflux/arcflux/pkg/svc/prereq"
	"github.com/arcflux/arcflux/pkg/svc/source"
	"github.com/arcflux/arcflux/pkg/utils/clierr"
	"github.com/arcflux/arcflux/pkg/utils/notify"
	"github.com/arcflux/arcflux/pkg/utils/parse"
)

// registeredState is the provider registration state required before any operation.
const registeredState = "Registered"

// defaultKustomizationName names the kustomization created when the caller
// supplies none.
const defaultKustomizationName = "default"

// Confirmer asks the user to approve a destructive step.
type Confirmer interface {
	// Confirm returns true when the user approves the described action.
	Confirm(message string) bool
}

// Prevalidator checks cluster-level preconditions before a configuration create.
type Prevalidator interface {
	Validate(ctx context.Context, scope azure.ClusterScope, noWait bool) error
}

// Provider implements flux configuration operations on one cluster scope.
type Provider struct {
	client    azure.FluxConfigurationsAPI
	prereq    Prevalidator
	confirmer Confirmer
	scope     azure.ClusterScope
	out       io.Writer
}

// NewProvider builds a Provider for a cluster scope, failing fast when the
// subscription is not registered for the KubernetesConfiguration resource
// provider.
func NewProvider(
	ctx context.Context,
	clients *azure.Clients,
	scope azure.ClusterScope,
	settings prereq.Settings,
	confirmer Confirmer,
	out io.Writer,
) (*Provider, error) {
	provider, err := clients.Providers.Get(ctx, azure.ConfigurationRPNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to check resource provider registration: %w", err)
	}

	if provider.RegistrationState == nil ||
		!strings.EqualFold(*provider.RegistrationState, registeredState) {
		return nil, clierr.Wrap(azure.ErrProviderNotRegistered,
			fmt.Sprintf("the subscription %s is not registered for the %s resource provider",
				scope.SubscriptionID, azure.ConfigurationRPNamespace),
			fmt.Sprintf("register the provider with 'az provider register --namespace %s' and retry",
				azure.ConfigurationRPNamespace))
	}

	validator := prereq.NewValidator(
		clients.Extensions, clients.SourceControlConfigurations, clients.Resources, settings, out)

	return &Provider{
		client:    clients.FluxConfigurations,
		prereq:    validator,
		confirmer: confirmer,
		scope:     scope,
		out:       out,
	}, nil
}

// newProviderForTest wires a Provider directly from its collaborators,
// bypassing the registration check.
func newProviderForTest(
	client azure.FluxConfigurationsAPI,
	prevalidator Prevalidator,
	confirmer Confirmer,
	scope azure.ClusterScope,
	out io.Writer,
) *Provider {
	return &Provider{
		client:    client,
		prereq:    prevalidator,
		confirmer: confirmer,
		scope:     scope,
		out:       out,
	}
}

// Show fetches the named configuration, translating 404 responses into
// domain errors that distinguish a missing cluster from a missing
// configuration.
func (p *Provider) Show(ctx context.Context, name string) (
	armkubernetesconfiguration.FluxConfiguration, error,
) {
	configuration, err := p.client.Get(ctx, p.scope, name)
	if err != nil {
		return armkubernetesconfiguration.FluxConfiguration{}, p.classifyGetError(name, err)
	}

	return configuration, nil
}

// List enumerates all flux configurations on the cluster.
func (p *Provider) List(ctx context.Context) (
	[]*armkubernetesconfiguration.FluxConfiguration, error,
) {
	configurations, err := p.client.List(ctx, p.scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list flux configurations: %w", err)
	}

	return configurations, nil
}

// CreateOptions carries the parameters of a configuration create.
type CreateOptions struct {
	Name           string
	Scope          string
	Namespace      string
	Kind           source.Kind
	Source         source.Options
	Suspend        bool
	Kustomizations []parse.Kustomization
	NoWait         bool
}

// Create validates prerequisites and creates a new flux configuration.
func (p *Provider) Create(ctx context.Context, options CreateOptions) error {
	scopeType, err := parseScopeType(options.Scope)
	if err != nil {
		return err
	}

	generator, err := source.New(options.Kind, options.Source)
	if err != nil {
		return err
	}

	definitions, err := generator.Generate()
	if err != nil {
		return err
	}

	kustomizations, err := p.resolveKustomizations(options.Name, options.Kustomizations)
	if err != nil {
		return err
	}

	protected, err := protectedSettings(options.Source)
	if err != nil {
		return err
	}

	err = p.prereq.Validate(ctx, p.scope, options.NoWait)
	if err != nil {
		return err
	}

	configuration := armkubernetesconfiguration.FluxConfiguration{
		Properties: &armkubernetesconfiguration.FluxConfigurationProperties{
			Scope:                          to.Ptr(scopeType),
			Namespace:                      stringPtr(options.Namespace),
			SourceKind:                     to.Ptr(definitions.SourceKind),
			GitRepository:                  definitions.GitRepository,
			Bucket:                         definitions.Bucket,
			Suspend:                        to.Ptr(options.Suspend),
			Kustomizations:                 kustomizations,
			ConfigurationProtectedSettings: protected,
		},
	}

	notify.Activityf(p.out,
		"creating the flux configuration %q on the cluster. This may take a few minutes...", options.Name)

	operation, err := p.client.BeginCreateOrUpdate(ctx, p.scope, options.Name, configuration)
	if err != nil {
		return fmt.Errorf("failed to create flux configuration %q: %w", options.Name, err)
	}

	return p.finish(ctx, operation, options.NoWait,
		fmt.Sprintf("flux configuration %q was created on the cluster", options.Name))
}

// UpdateOptions carries the parameters of a configuration patch. Only
// supplied fields reach the wire.
type UpdateOptions struct {
	Name           string
	Kind           source.Kind
	Source         source.Options
	Suspend        *bool
	Kustomizations []parse.Kustomization
	NoWait         bool
}

// Update patches an existing flux configuration. The current resource is
// fetched first to default the source kind; prerequisites are not
// re-validated on update.
func (p *Provider) Update(ctx context.Context, options UpdateOptions) error {
	current, err := p.Show(ctx, options.Name)
	if err != nil {
		return err
	}

	kind := options.Kind
	if kind == "" {
		kind = currentSourceKind(current)
	}

	generator, err := source.New(kind, options.Source)
	if err != nil {
		return err
	}

	patchDefinitions, err := generator.GeneratePatch()
	if err != nil {
		return err
	}

	kustomizations, err := buildKustomizations(options.Kustomizations, p.out)
	if err != nil {
		return err
	}

	protected, err := protectedSettings(options.Source)
	if err != nil {
		return err
	}

	properties := &armkubernetesconfiguration.FluxConfigurationPatchProperties{
		Suspend:                        options.Suspend,
		ConfigurationProtectedSettings: protected,
	}

	if len(kustomizations) > 0 {
		properties.Kustomizations = patchKustomizationMap(kustomizations)
	}

	if !patchDefinitions.IsZero() {
		properties.SourceKind = patchDefinitions.SourceKind
		properties.GitRepository = patchDefinitions.GitRepository
		properties.Bucket = patchDefinitions.Bucket
	}

	patch := armkubernetesconfiguration.FluxConfigurationPatch{Properties: properties}

	notify.Activityf(p.out, "updating the flux configuration %q on the cluster...", options.Name)

	operation, err := p.client.BeginUpdate(ctx, p.scope, options.Name, patch)
	if err != nil {
		return fmt.Errorf("failed to update flux configuration %q: %w", options.Name, err)
	}

	return p.finish(ctx, operation, options.NoWait,
		fmt.Sprintf("flux configuration %q was updated", options.Name))
}

// DeleteOptions carries the parameters of a configuration delete.
type DeleteOptions struct {
	Name string
	// Force deletes the resource even when the cluster is unreachable.
	Force  bool
	NoWait bool
	// Yes bypasses all confirmation prompts.
	Yes bool
}

// Delete removes a flux configuration. A missing configuration is a warning,
// not an error. When any kustomization has prune enabled, deletion also
// removes the Kubernetes objects it manages, so an explicit confirmation is
// required.
func (p *Provider) Delete(ctx context.Context, options DeleteOptions) error {
	configuration, err := p.client.Get(ctx, p.scope, options.Name)
	if err != nil {
		if azure.IsNotFound(err) {
			notify.Warningf(p.out,
				"no flux configuration with name %q found on cluster %q, so nothing to delete",
				options.Name, p.scope.ClusterName)

			return nil
		}

		return p.classifyGetError(options.Name, err)
	}

	if !options.Yes && !p.confirmer.Confirm(
		fmt.Sprintf("Delete the flux configuration %q?", options.Name)) {
		return ErrAborted
	}

	if hasPruneEnabled(configuration) {
		notify.Warningf(p.out,
			"prune is enabled on one or more kustomizations. Deleting this flux configuration "+
				"will also delete the Kubernetes objects deployed by the kustomization(s).")

		if !options.Yes && !p.confirmer.Confirm("Do you want to continue?") {
			return ErrAborted
		}
	}

	notify.Activityf(p.out,
		"deleting the flux configuration from the cluster. This may take a few minutes...")

	operation, err := p.client.BeginDelete(ctx, p.scope, options.Name, options.Force)
	if err != nil {
		return fmt.Errorf("failed to delete flux configuration %q: %w", options.Name, err)
	}

	return p.finish(ctx, operation, options.NoWait,
		fmt.Sprintf("flux configuration %q was deleted", options.Name))
}

// finish waits on the operation unless no-wait was requested, then reports success.
func (p *Provider) finish(ctx context.Context, operation azure.Operation, noWait bool, success string) error {
	if noWait {
		notify.Infof(p.out, "the operation was accepted; not waiting for it to complete")

		return nil
	}

	err := operation.Wait(ctx)
	if err != nil {
		return err
	}

	notify.Successf(p.out, "%s", success)

	return nil
}

// resolveKustomizations converts the flag-level kustomizations for a create.
// When none are supplied the configuration gets a single empty default
// kustomization after an explicit confirmation.
func (p *Provider) resolveKustomizations(
	configName string, kustomizations []parse.Kustomization,
) (map[string]*armkubernetesconfiguration.KustomizationDefinition, error) {
	if len(kustomizations) == 0 {
		notify.Warningf(p.out,
			"no kustomizations were specified for %q. A default kustomization syncing the "+
				"repository root will be created.", configName)

		if !p.confirmer.Confirm("Are you sure you want to proceed without any kustomizations?") {
			return nil, ErrAborted
		}

		return map[string]*armkubernetesconfiguration.KustomizationDefinition{
			defaultKustomizationName: {},
		}, nil
	}

	return buildKustomizations(kustomizations, p.out)
}

// classifyGetError turns 404 transport errors into domain errors carrying a
// remediation hint; all other errors propagate unchanged.
func (p *Provider) classifyGetError(name string, err error) error {
	if !azure.IsNotFound(err) {
		return err
	}

	if azure.IsClusterNotFound(err) {
		return clierr.Wrap(ErrClusterNotFound,
			fmt.Sprintf("the cluster %s/%s/%s could not be found",
				p.scope.ClusterRP(), p.scope.ClusterType, p.scope.ClusterName),
			fmt.Sprintf("verify that the --cluster-type is correct and the resource %s/%s/%s exists",
				p.scope.ClusterRP(), p.scope.ClusterType, p.scope.ClusterName))
	}

	return clierr.Wrap(ErrConfigurationNotFound,
		fmt.Sprintf("the resource %s could not be found", p.scope.ConfigurationID(name)),
		fmt.Sprintf("verify that the resource %s exists", p.scope.ConfigurationID(name)))
}

// parseScopeType maps the scope flag onto the wire enum.
func parseScopeType(value string) (armkubernetesconfiguration.ScopeType, error) {
	switch strings.ToLower(value) {
	case "", string(armkubernetesconfiguration.ScopeTypeCluster):
		return armkubernetesconfiguration.ScopeTypeCluster, nil
	case string(armkubernetesconfiguration.ScopeTypeNamespace):
		return armkubernetesconfiguration.ScopeTypeNamespace, nil
	default:
		return "", fmt.Errorf("%w: %q (expected cluster or namespace)", ErrInvalidScope, value)
	}
}

// currentSourceKind maps the remote source kind back onto the CLI kind,
// defaulting to git for legacy resources with no kind recorded.
func currentSourceKind(configuration armkubernetesconfiguration.FluxConfiguration) source.Kind {
	if configuration.Properties == nil || configuration.Properties.SourceKind == nil {
		return source.KindGit
	}

	if *configuration.Properties.SourceKind == armkubernetesconfiguration.SourceKindTypeBucket {
		return source.KindBucket
	}

	return source.KindGit
}

// hasPruneEnabled reports whether any kustomization on the configuration has
// prune enabled.
func hasPruneEnabled(configuration armkubernetesconfiguration.FluxConfiguration) bool {
	if configuration.Properties == nil {
		return false
	}

	for _, kustomization := range configuration.Properties.Kustomizations {
		if kustomization != nil && kustomization.Prune != nil && *kustomization.Prune {
			return true
		}
	}

	return false
}

// stringPtr returns a pointer to value, or nil for the empty string.
func stringPtr(value string) *string {
	if value == "" {
		return nil
	}

	return to.Ptr(value)
}
