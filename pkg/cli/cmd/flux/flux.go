// Package flux implements the flux configuration command group.
package flux

import (
	"github.com/arcflux/arcflux/pkg/cli/cmd/flux/kustomization"
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/spf13/cobra"
)

// NewFluxCmd creates and returns the flux command group.
func NewFluxCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flux",
		Short: "Manage flux configurations on a cluster",
		Long: "Manage GitOps (Flux v2) configurations on an Arc-enabled or AKS cluster. " +
			"Configurations sync a git repository or S3-compatible bucket onto the cluster " +
			"through the microsoft.flux cluster extension.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The err can safely be ignored, as it can never fail at runtime.
			_ = cmd.Help()

			return nil
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCreateCmd(runtimeContainer))
	cmd.AddCommand(NewUpdateCmd(runtimeContainer))
	cmd.AddCommand(NewDeleteCmd(runtimeContainer))
	cmd.AddCommand(NewListCmd(runtimeContainer))
	cmd.AddCommand(NewShowCmd(runtimeContainer))
	cmd.AddCommand(kustomization.NewKustomizationCmd(runtimeContainer))

	return cmd
}
