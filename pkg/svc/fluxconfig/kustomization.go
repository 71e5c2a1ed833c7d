package fluxconfig

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armkubernetesconfiguration "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/kubernetesconfiguration/armkubernetesconfiguration/v2"
	"github.com/arcflux/arcflux/pkg/utils/notify"
	"github.com/arcflux/arcflux/pkg/utils/parse"
)

// KustomizationOptions carries the parameters of a single-kustomization
// mutation on an existing configuration.
type KustomizationOptions struct {
	ConfigurationName string
	Definition        parse.Kustomization
	NoWait            bool
	// Yes bypasses the prune confirmation on delete.
	Yes bool
}

// CreateKustomization adds a named kustomization to a configuration. The
// patch carries only the new entry; other kustomizations are untouched.
func (p *Provider) CreateKustomization(ctx context.Context, options KustomizationOptions) error {
	configuration, err := p.Show(ctx, options.ConfigurationName)
	if err != nil {
		return err
	}

	name := options.Definition.Name
	if _, exists := existingKustomizations(configuration)[name]; exists {
		return clierrKustomizationExists(name, options.ConfigurationName)
	}

	definition, err := buildKustomization(options.Definition, p.out)
	if err != nil {
		return err
	}

	return p.patchKustomizations(ctx, options,
		map[string]*armkubernetesconfiguration.KustomizationDefinition{name: definition},
		fmt.Sprintf("kustomization %q was created on flux configuration %q",
			name, options.ConfigurationName))
}

// UpdateKustomization replaces a named kustomization wholesale. The remote
// patch semantics replace the entire map entry, so fields not supplied here
// are reset rather than preserved.
func (p *Provider) UpdateKustomization(ctx context.Context, options KustomizationOptions) error {
	configuration, err := p.Show(ctx, options.ConfigurationName)
	if err != nil {
		return err
	}

	name := options.Definition.Name
	if _, exists := existingKustomizations(configuration)[name]; !exists {
		return clierrKustomizationNotFound(name, options.ConfigurationName)
	}

	definition, err := buildKustomization(options.Definition, p.out)
	if err != nil {
		return err
	}

	return p.patchKustomizations(ctx, options,
		map[string]*armkubernetesconfiguration.KustomizationDefinition{name: definition},
		fmt.Sprintf("kustomization %q was updated on flux configuration %q",
			name, options.ConfigurationName))
}

// DeleteKustomization removes a named kustomization by patching its key to
// null. When the kustomization has prune enabled, deletion also removes the
// Kubernetes objects it manages and requires an explicit confirmation.
func (p *Provider) DeleteKustomization(ctx context.Context, options KustomizationOptions) error {
	configuration, err := p.Show(ctx, options.ConfigurationName)
	if err != nil {
		return err
	}

	name := options.Definition.Name

	existing, found := existingKustomizations(configuration)[name]
	if !found {
		return clierrKustomizationNotFound(name, options.ConfigurationName)
	}

	if existing != nil && existing.Prune != nil && *existing.Prune {
		notify.Warningf(p.out,
			"prune is enabled on this kustomization. Deleting it will also delete the "+
				"Kubernetes objects it deployed.")

		if !options.Yes && !p.confirmer.Confirm("Do you want to continue?") {
			return ErrAborted
		}
	}

	// A null map value instructs the service to remove the key.
	return p.patchKustomizations(ctx, options,
		map[string]*armkubernetesconfiguration.KustomizationDefinition{name: nil},
		fmt.Sprintf("kustomization %q was deleted from flux configuration %q",
			name, options.ConfigurationName))
}

// ListKustomizations returns the kustomizations of a configuration ordered by name.
func (p *Provider) ListKustomizations(ctx context.Context, configurationName string) (
	[]*armkubernetesconfiguration.KustomizationDefinition, error,
) {
	configuration, err := p.Show(ctx, configurationName)
	if err != nil {
		return nil, err
	}

	kustomizations := existingKustomizations(configuration)

	names := make([]string, 0, len(kustomizations))
	for name := range kustomizations {
		names = append(names, name)
	}

	sort.Strings(names)

	result := make([]*armkubernetesconfiguration.KustomizationDefinition, 0, len(names))
	for _, name := range names {
		result = append(result, kustomizations[name])
	}

	return result, nil
}

// ShowKustomization returns a single named kustomization.
func (p *Provider) ShowKustomization(ctx context.Context, configurationName, name string) (
	*armkubernetesconfiguration.KustomizationDefinition, error,
) {
	configuration, err := p.Show(ctx, configurationName)
	if err != nil {
		return nil, err
	}

	definition, found := existingKustomizations(configuration)[name]
	if !found {
		return nil, clierrKustomizationNotFound(name, configurationName)
	}

	return definition, nil
}

// patchKustomizations issues a patch carrying only the kustomization map.
func (p *Provider) patchKustomizations(
	ctx context.Context, options KustomizationOptions,
	kustomizations map[string]*armkubernetesconfiguration.KustomizationDefinition,
	success string,
) error {
	patch := armkubernetesconfiguration.FluxConfigurationPatch{
		Properties: &armkubernetesconfiguration.FluxConfigurationPatchProperties{
			Kustomizations: patchKustomizationMap(kustomizations),
		},
	}

	operation, err := p.client.BeginUpdate(ctx, p.scope, options.ConfigurationName, patch)
	if err != nil {
		return fmt.Errorf("failed to patch flux configuration %q: %w",
			options.ConfigurationName, err)
	}

	return p.finish(ctx, operation, options.NoWait, success)
}

// buildKustomizations converts and validates the flag-level kustomization
// list, rejecting duplicate names. Dependency names are deliberately not
// checked against the existing set: forward references support creating the
// graph in any order.
func buildKustomizations(
	kustomizations []parse.Kustomization, out io.Writer,
) (map[string]*armkubernetesconfiguration.KustomizationDefinition, error) {
	if len(kustomizations) == 0 {
		return nil, nil
	}

	result := make(map[string]*armkubernetesconfiguration.KustomizationDefinition, len(kustomizations))

	for _, kustomization := range kustomizations {
		if _, exists := result[kustomization.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKustomization, kustomization.Name)
		}

		definition, err := buildKustomization(kustomization, out)
		if err != nil {
			return nil, err
		}

		result[kustomization.Name] = definition
	}

	return result, nil
}

// buildKustomization converts one flag-level kustomization into its wire definition.
func buildKustomization(
	kustomization parse.Kustomization, out io.Writer,
) (*armkubernetesconfiguration.KustomizationDefinition, error) {
	for flag, value := range map[string]string{
		"timeout":        kustomization.Timeout,
		"sync_interval":  kustomization.SyncInterval,
		"retry_interval": kustomization.RetryInterval,
	} {
		err := parse.ValidateDuration(flag, value)
		if err != nil {
			return nil, err
		}
	}

	if kustomization.Validation != "" {
		notify.Warningf(out,
			"the validation setting applies to v1 configurations only and will be ignored")
	}

	definition := &armkubernetesconfiguration.KustomizationDefinition{
		Path:  to.Ptr(kustomization.Path),
		Prune: to.Ptr(kustomization.Prune),
		Force: to.Ptr(kustomization.Force),
	}

	if len(kustomization.DependsOn) > 0 {
		dependsOn := make([]*string, 0, len(kustomization.DependsOn))
		for _, dependency := range kustomization.DependsOn {
			dependsOn = append(dependsOn, to.Ptr(dependency))
		}

		definition.DependsOn = dependsOn
	}

	var err error

	definition.TimeoutInSeconds, err = parse.Duration(kustomization.Timeout)
	if err != nil {
		return nil, err
	}

	definition.SyncIntervalInSeconds, err = parse.Duration(kustomization.SyncInterval)
	if err != nil {
		return nil, err
	}

	definition.RetryIntervalInSeconds, err = parse.Duration(kustomization.RetryInterval)
	if err != nil {
		return nil, err
	}

	return definition, nil
}

// patchKustomizationMap converts kustomization definitions into their
// field-identical patch counterparts, preserving nil entries that instruct
// the service to remove keys.
func patchKustomizationMap(
	kustomizations map[string]*armkubernetesconfiguration.KustomizationDefinition,
) map[string]*armkubernetesconfiguration.KustomizationPatchDefinition {
	if kustomizations == nil {
		return nil
	}

	result := make(map[string]*armkubernetesconfiguration.KustomizationPatchDefinition, len(kustomizations))

	for name, definition := range kustomizations {
		if definition == nil {
			result[name] = nil
			continue
		}

		result[name] = &armkubernetesconfiguration.KustomizationPatchDefinition{
			DependsOn:              definition.DependsOn,
			Force:                  definition.Force,
			Path:                   definition.Path,
			PostBuild:              definition.PostBuild,
			Prune:                  definition.Prune,
			RetryIntervalInSeconds: definition.RetryIntervalInSeconds,
			SyncIntervalInSeconds:  definition.SyncIntervalInSeconds,
			TimeoutInSeconds:       definition.TimeoutInSeconds,
			Wait:                   definition.Wait,
		}
	}

	return result
}

// existingKustomizations returns the configuration's kustomization map,
// tolerating nil properties.
func existingKustomizations(
	configuration armkubernetesconfiguration.FluxConfiguration,
) map[string]*armkubernetesconfiguration.KustomizationDefinition {
	if configuration.Properties == nil {
		return nil
	}

	return configuration.Properties.Kustomizations
}

// clierrKustomizationExists builds the conflict error for a duplicate create.
func clierrKustomizationExists(name, configurationName string) error {
	return fmt.Errorf("%w: %q is already defined on flux configuration %q; "+
		"use the kustomization update command to change it",
		ErrKustomizationExists, name, configurationName)
}

// clierrKustomizationNotFound builds the not-found error for a missing kustomization.
func clierrKustomizationNotFound(name, configurationName string) error {
	return fmt.Errorf("%w: %q is not defined on flux configuration %q",
		ErrKustomizationNotFound, name, configurationName)
}
