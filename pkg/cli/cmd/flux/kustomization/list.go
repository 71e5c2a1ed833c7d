package kustomization

import (
	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/cli/helpers"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/spf13/cobra"
)

// newListCmd creates and returns the kustomization list command.
func newListCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var configurationName string

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the kustomizations of a flux configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)

	cmd.Flags().StringVarP(&configurationName, "name", "n", "",
		"Name of the flux configuration")

	_ = cmd.MarkFlagRequired("name")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		provider, err := helpers.ResolveProvider(cmd, runtimeContainer, clusterFlags)
		if err != nil {
			return err
		}

		kustomizations, err := provider.ListKustomizations(cmd.Context(), configurationName)
		if err != nil {
			return err
		}

		return helpers.PrintJSON(cmd.OutOrStdout(), kustomizations)
	}

	return cmd
}
