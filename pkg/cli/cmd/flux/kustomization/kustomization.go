// Package kustomization implements the flux kustomization command group,
// managing individual kustomizations of an existing flux configuration.
package kustomization

import (
	runtime "github.com/arcflux/arcflux/pkg/di"
	"github.com/arcflux/arcflux/pkg/svc/fluxconfig"
	"github.com/arcflux/arcflux/pkg/utils/parse"
	"github.com/spf13/cobra"
)

// NewKustomizationCmd creates and returns the kustomization command group.
func NewKustomizationCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kustomization",
		Short: "Manage kustomizations of a flux configuration",
		Long: "Manage the kustomizations of an existing flux configuration. Each " +
			"kustomization selects a path of the source to apply on the cluster and may " +
			"depend on other kustomizations of the same configuration.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The err can safely be ignored, as it can never fail at runtime.
			_ = cmd.Help()

			return nil
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(newCreateCmd(runtimeContainer))
	cmd.AddCommand(newUpdateCmd(runtimeContainer))
	cmd.AddCommand(newDeleteCmd(runtimeContainer))
	cmd.AddCommand(newListCmd(runtimeContainer))
	cmd.AddCommand(newShowCmd(runtimeContainer))

	return cmd
}

// definitionFlags carries the flag values describing one kustomization.
type definitionFlags struct {
	configurationName string
	name              string
	path              string
	dependsOn         string
	timeout           string
	syncInterval      string
	retryInterval     string
	prune             bool
	force             bool
	noWait            bool
}

// register adds the definition flags to a command.
func (d *definitionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.configurationName, "name", "n", "",
		"Name of the flux configuration")
	cmd.Flags().StringVar(&d.name, "kustomization-name", "",
		"Name of the kustomization")
	cmd.Flags().StringVar(&d.path, "path", "",
		"Path within the source to apply on the cluster")
	cmd.Flags().StringVarP(&d.dependsOn, "depends-on", "d", "",
		"Comma-separated names of kustomizations that must reconcile first")
	cmd.Flags().StringVar(&d.timeout, "timeout", "",
		"Maximum time to reconcile the kustomization before timing out")
	cmd.Flags().StringVar(&d.syncInterval, "sync-interval", "",
		"Time between reconciliations of the kustomization on the cluster")
	cmd.Flags().StringVar(&d.retryInterval, "retry-interval", "",
		"Time between reconciliation retries when reconciliation fails")
	cmd.Flags().BoolVar(&d.prune, "prune", false,
		"Garbage collect Kubernetes objects removed from the source")
	cmd.Flags().BoolVar(&d.force, "force", false,
		"Recreate Kubernetes objects on immutable field changes")
	cmd.Flags().BoolVar(&d.noWait, "no-wait", false,
		"Do not wait for the long-running operation to finish")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("kustomization-name")
}

// definition converts the flag values into a kustomization definition.
func (d *definitionFlags) definition() (parse.Kustomization, error) {
	dependsOn, err := parse.Dependencies(d.dependsOn)
	if err != nil {
		return parse.Kustomization{}, err
	}

	return parse.Kustomization{
		Name:          d.name,
		Path:          d.path,
		DependsOn:     dependsOn,
		Timeout:       d.timeout,
		SyncInterval:  d.syncInterval,
		RetryInterval: d.retryInterval,
		Prune:         d.prune,
		Force:         d.force,
	}, nil
}

// options converts the flag values into provider options.
func (d *definitionFlags) options(yes bool) (fluxconfig.KustomizationOptions, error) {
	definition, err := d.definition()
	if err != nil {
		return fluxconfig.KustomizationOptions{}, err
	}

	return fluxconfig.KustomizationOptions{
		ConfigurationName: d.configurationName,
		Definition:        definition,
		NoWait:            d.noWait,
		Yes:               yes,
	}, nil
}
