package kustomization

import (
	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/cli/helpers"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/spf13/cobra"
)

// newShowCmd creates and returns the kustomization show command.
func newShowCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var (
		configurationName string
		name              string
	)

	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Show a kustomization of a flux configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	clusterFlags := flags.RegisterCluster(cmd)

	cmd.Flags().StringVarP(&configurationName, "name", "n", "",
		"Name of the flux configuration")
	cmd.Flags().StringVar(&name, "kustomization-name", "",
		"Name of the kustomization")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("kustomization-name")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		provider, err := helpers.ResolveProvider(cmd, runtimeContainer, clusterFlags)
		if err != nil {
			return err
		}

		kustomization, err := provider.ShowKustomization(cmd.Context(), configurationName, name)
		if err != nil {
			return err
		}

		return helpers.PrintJSON(cmd.OutOrStdout(), kustomization)
	}

	return cmd
}
