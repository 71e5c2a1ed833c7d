// Package prereq validates that a flux configuration may be installed on a
// cluster: no legacy v1 configuration exists, and the flux cluster extension
// is present and healthy, installing it on demand when absent.
//
// The presence check and the install are separate remote calls, so a
// concurrent installer can race between them. The remote API offers no
// create-if-absent primitive; the race is accepted rather than papered over
// with client-side locking.
package prereq

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/arcflux/arcflux/pkg/utils/clierr"
	"github.com/arcflux/arcflux/pkg/utils/notify"
)

const (
	// FluxExtensionType is the cluster extension type for the flux agents.
	FluxExtensionType = "microsoft.flux"
	// fluxExtensionName is the resource name used when installing the extension.
	fluxExtensionName = "flux"
)

// Settings carries environment-provided install defaults for the flux extension.
type Settings struct {
	// ReleaseTrain overrides the extension release train when non-empty.
	ReleaseTrain string
	// Version pins the extension version when non-empty.
	Version string
	// Dogfood marks non-production control planes, where no extension
	// identity is attached.
	Dogfood bool
}

// Validator evaluates cluster-level preconditions before a configuration create.
type Validator struct {
	extensions azure.ExtensionsAPI
	legacy     azure.SourceControlConfigurationsAPI
	resources  azure.ResourcesAPI
	settings   Settings
	out        io.Writer
}

// NewValidator creates a prerequisite validator.
func NewValidator(
	extensions azure.ExtensionsAPI,
	legacy azure.SourceControlConfigurationsAPI,
	resources azure.ResourcesAPI,
	settings Settings,
	out io.Writer,
) *Validator {
	return &Validator{
		extensions: extensions,
		legacy:     legacy,
		resources:  resources,
		settings:   settings,
		out:        out,
	}
}

// Validate runs all prerequisite checks for installing a flux configuration
// on the cluster identified by scope.
func (v *Validator) Validate(ctx context.Context, scope azure.ClusterScope, noWait bool) error {
	err := v.checkLegacyAbsent(ctx, scope)
	if err != nil {
		return err
	}

	return v.ensureFluxExtension(ctx, scope, noWait)
}

// checkLegacyAbsent fails when any v1 source-control configuration exists on
// the cluster scope. There is no auto-remediation: the user must delete the
// v1 configuration first.
func (v *Validator) checkLegacyAbsent(ctx context.Context, scope azure.ClusterScope) error {
	configurations, err := v.legacy.List(ctx, scope)
	if err != nil {
		return fmt.Errorf("failed to check for v1 configurations: %w", err)
	}

	if len(configurations) > 0 {
		return clierr.Wrap(ErrLegacyConfigurationExists,
			"cannot install a flux configuration: a v1 source control configuration exists on the cluster, and v1 and v2 configurations are mutually exclusive",
			"delete the v1 source control configuration with 'az k8s-configuration delete' before creating flux configurations")
	}

	return nil
}

// ensureFluxExtension verifies the flux cluster extension is installed and
// healthy, installing it when absent.
func (v *Validator) ensureFluxExtension(ctx context.Context, scope azure.ClusterScope, noWait bool) error {
	extensions, err := v.extensions.List(ctx, scope)
	if err != nil {
		return fmt.Errorf("failed to list cluster extensions: %w", err)
	}

	existing := findFluxExtension(extensions)
	if existing == nil {
		return v.installFluxExtension(ctx, scope, noWait)
	}

	state := armkubernetesconfiguration.ProvisioningStateSucceeded
	if existing.Properties != nil && existing.Properties.ProvisioningState != nil {
		state = *existing.Properties.ProvisioningState
	}

	switch state {
	case armkubernetesconfiguration.ProvisioningStateSucceeded:
		return nil
	case armkubernetesconfiguration.ProvisioningStateCreating:
		return clierr.Wrap(ErrExtensionCreating,
			"the 'microsoft.flux' extension is still installing on the cluster",
			"wait for the extension install to complete and retry")
	default:
		return clierr.Wrap(ErrExtensionUnhealthy,
			fmt.Sprintf("the 'microsoft.flux' extension is in state %q on the cluster", state),
			"inspect the extension with the cluster extension show command and reinstall it if necessary")
	}
}

// installFluxExtension installs the flux extension, blocking on the remote
// operation unless noWait was requested.
func (v *Validator) installFluxExtension(ctx context.Context, scope azure.ClusterScope, noWait bool) error {
	notify.Warningf(v.out,
		"'microsoft.flux' extension not found on the cluster, installing it now. This may take a few minutes...")

	extension := armkubernetesconfiguration.Extension{
		Properties: &armkubernetesconfiguration.ExtensionProperties{
			ExtensionType:           to.Ptr(FluxExtensionType),
			AutoUpgradeMinorVersion: to.Ptr(true),
		},
	}

	if v.settings.ReleaseTrain != "" {
		extension.Properties.ReleaseTrain = to.Ptr(v.settings.ReleaseTrain)
	}

	if v.settings.Version != "" {
		extension.Properties.Version = to.Ptr(v.settings.Version)
		extension.Properties.AutoUpgradeMinorVersion = to.Ptr(false)
	}

	err := v.attachIdentity(ctx, scope, &extension)
	if err != nil {
		return err
	}

	operation, err := v.extensions.BeginCreate(ctx, scope, fluxExtensionName, extension)
	if err != nil {
		return fmt.Errorf("failed to install the flux extension: %w", err)
	}

	if !noWait {
		err = operation.Wait(ctx)
		if err != nil {
			return fmt.Errorf("failed to install the flux extension: %w", err)
		}
	}

	notify.Successf(v.out, "'microsoft.flux' extension was successfully installed on the cluster")

	return nil
}

// attachIdentity adds a system-assigned identity to the extension. Identity
// is skipped for AKS clusters (the managed RP handles it) and for dogfood
// control planes. The cluster resource is resolved first so a missing cluster
// surfaces here instead of as an opaque extension-create failure.
func (v *Validator) attachIdentity(
	ctx context.Context, scope azure.ClusterScope,
	extension *armkubernetesconfiguration.Extension,
) error {
	if v.settings.Dogfood || scope.ClusterRP() == azure.ManagedRPNamespace {
		return nil
	}

	resource, err := v.resources.GetByID(ctx, scope.ResourceID(), scope.ParentAPIVersion())
	if err != nil {
		return fmt.Errorf("failed to resolve the cluster resource: %w", err)
	}

	if resource.Location != nil {
		notify.Activityf(v.out, "attaching a system-assigned identity to the extension in %s",
			strings.ToLower(*resource.Location))
	}

	extension.Identity = &armkubernetesconfiguration.Identity{
		Type: to.Ptr("SystemAssigned"),
	}

	return nil
}

// findFluxExtension locates an installed flux extension, matching the
// extension type case-insensitively.
func findFluxExtension(
	extensions []*armkubernetesconfiguration.Extension,
) *armkubernetesconfiguration.Extension {
	for _, extension := range extensions {
		if extension == nil || extension.Properties == nil || extension.Properties.ExtensionType == nil {
			continue
		}

		if strings.EqualFold(*extension.Properties.ExtensionType, FluxExtensionType) {
			return extension
		}
	}

	return nil
}
