package kustomization

import (
	"context"

	"github.com/arcflux/arcflux/pkg/cli/flags"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/arcflux/arcflux/pkg/svc/fluxconfig"
	"github.com/spf13/cobra"
)

// newDeleteCmd creates and returns the kustomization delete command.
func newDeleteCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var (
		configurationName string
		name              string
		noWait            bool
		yes               bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a kustomization from a flux configuration",
		Long: "Remove a kustomization from a flux configuration. When the kustomization " +
			"has prune enabled, the Kubernetes objects it deployed are deleted with it, so " +
			"an extra confirmation is required.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)

	cmd.Flags().StringVarP(&configurationName, "name", "n", "",
		"Name of the flux configuration")
	cmd.Flags().StringVar(&name, "kustomization-name", "",
		"Name of the kustomization")
	cmd.Flags().BoolVar(&noWait, "no-wait", false,
		"Do not wait for the long-running operation to finish")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Do not prompt for confirmation")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("kustomization-name")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		definitionValues := &definitionFlags{
			configurationName: configurationName,
			name:              name,
			noWait:            noWait,
		}

		return runWriteAction(cmd, runtimeContainer, clusterFlags, definitionValues, yes,
			func(ctx context.Context, provider *fluxconfig.Provider,
				options fluxconfig.KustomizationOptions,
			) error {
				return provider.DeleteKustomization(ctx, options)
			})
	}

	return cmd
}
