package kustomization

import (
	"context"

	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/cli/helpers"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/arcflux/arcflux/pkg/svc/fluxconfig"
	"github.com/spf13/cobra"
)

// newCreateCmd creates and returns the kustomization create command.
func newCreateCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var definitionValues definitionFlags

	cmd := &cobra.Command{
		Use:           "create",
		Short:         "Add a kustomization to a flux configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)
	definitionValues.register(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runWriteAction(cmd, runtimeContainer, clusterFlags, &definitionValues, false,
			func(ctx context.Context, provider *fluxconfig.Provider,
				options fluxconfig.KustomizationOptions,
			) error {
				return provider.CreateKustomization(ctx, options)
			})
	}

	return cmd
}

// runWriteAction resolves the provider and runs one kustomization mutation.
func runWriteAction(
	cmd *cobra.Command,
	runtimeContainer *runtime.Runtime,
	clusterFlags *flags.Cluster,
	definitionValues *definitionFlags,
	yes bool,
	action func(context.Context, *fluxconfig.Provider, fluxconfig.KustomizationOptions) error,
) error {
	options, err := definitionValues.options(yes)
	if err != nil {
		return err
	}

	provider, err := helpers.ResolveProvider(cmd, runtimeContainer, clusterFlags)
	if err != nil {
		return err
	}

	return action(cmd.Context(), provider, options)
}
