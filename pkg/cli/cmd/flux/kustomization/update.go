package kustomization

import (
	"context"

	"github.com/arcflux/arcflux/pkg/cli/flags"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/arcflux/arcflux/pkg/svc/fluxconfig"
	"github.com/spf13/cobra"
)

// newUpdateCmd creates and returns the kustomization update command.
func newUpdateCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var definitionValues definitionFlags

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a kustomization of a flux configuration",
		Long: "Update a kustomization of a flux configuration. The kustomization is " +
			"replaced wholesale: fields not supplied here are reset to their defaults.",
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
				return provider.UpdateKustomization(ctx, options)
			})
	}

	return cmd
}
