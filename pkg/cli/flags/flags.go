// Package flags registers the flag sets shared by the flux commands:
// cluster identity, source parameters, and kustomization definitions.
package flags

import (
	"errors"
	"fmt"

	"github.com/arcflux/arcflux/pkg/cli/config"
	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/arcflux/arcflux/pkg/svc/source"
	"github.com/arcflux/arcflux/pkg/utils/envvar"
	"github.com/arcflux/arcflux/pkg/utils/parse"
	"github.com/arcflux/arcflux/pkg/utils/timer"
	"github.com/spf13/cobra"
)

// ErrSubscriptionRequired is returned when no subscription was supplied via
// flag or environment.
var ErrSubscriptionRequired = errors.New(
	"no subscription specified, use --subscription or set AZURE_SUBSCRIPTION_ID")

// TimingFlagName is the persistent flag enabling per-activity timing output.
const TimingFlagName = "timing"

// MaybeTimer returns tmr when the command has the timing flag enabled, nil
// otherwise. A nil timer suppresses the timing block on success messages.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if cmd == nil {
		return nil
	}

	enabled, err := cmd.Flags().GetBool(TimingFlagName)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}

// Cluster carries the cluster identity flags shared by every command.
type Cluster struct {
	ResourceGroup string
	ClusterName   string
	ClusterType   string
	Subscription  string
}

// RegisterCluster adds the cluster identity flags to a command.
func RegisterCluster(cmd *cobra.Command) *Cluster {
	cluster := &Cluster{}

	cmd.Flags().StringVarP(&cluster.ResourceGroup, "resource-group", "g", "",
		"Name of the resource group containing the cluster")
	cmd.Flags().StringVarP(&cluster.ClusterName, "cluster-name", "c", "",
		"Name of the cluster")
	cmd.Flags().StringVarP(&cluster.ClusterType, "cluster-type", "t",
		azure.ClusterTypeConnectedClusters,
		fmt.Sprintf("Cluster resource type (%s or %s)",
			azure.ClusterTypeConnectedClusters, azure.ClusterTypeManagedClusters))
	cmd.Flags().StringVar(&cluster.Subscription, "subscription", "",
		"Subscription id, defaults to AZURE_SUBSCRIPTION_ID")

	_ = cmd.MarkFlagRequired("resource-group")
	_ = cmd.MarkFlagRequired("cluster-name")

	return cluster
}

// Scope resolves the flags into a cluster scope, falling back to the
// environment for the subscription.
func (c *Cluster) Scope(cfg *config.Manager) (azure.ClusterScope, error) {
	subscription := c.Subscription
	if subscription == "" {
		subscription = cfg.SubscriptionID()
	}

	if subscription == "" {
		return azure.ClusterScope{}, ErrSubscriptionRequired
	}

	return azure.NewClusterScope(subscription, c.ResourceGroup, c.ClusterType, c.ClusterName)
}

// RegisterSource adds the source parameter flags to a command. The patch
// variants of the commands register the same set; required-ness is enforced
// per source kind at generation time, not by cobra.
func RegisterSource(cmd *cobra.Command) *source.Options {
	options := &source.Options{}

	cmd.Flags().StringVarP(&options.URL, "url", "u", "", "URL of the source")
	cmd.Flags().StringVar(&options.Timeout, "timeout", "",
		"Maximum time to reconcile the source before timing out")
	cmd.Flags().StringVar(&options.SyncInterval, "sync-interval", "",
		"Time between reconciliations of the source on the cluster")
	cmd.Flags().StringVar(&options.LocalAuthRef, "local-auth-ref", "",
		"Local reference to a Kubernetes secret in the configuration namespace to use for source authentication")

	cmd.Flags().StringVar(&options.Branch, "branch", "", "Branch to reconcile with the git source")
	cmd.Flags().StringVar(&options.Tag, "tag", "", "Tag to reconcile with the git source")
	cmd.Flags().StringVar(&options.Semver, "semver", "",
		"Semver range to reconcile with the git source")
	cmd.Flags().StringVar(&options.Commit, "commit", "",
		"Commit to reconcile with the git source")
	cmd.Flags().StringVar(&options.SSHPrivateKey, "ssh-private-key", "",
		"Base64-encoded private ssh key for private repository sync")
	cmd.Flags().StringVar(&options.SSHPrivateKeyFile, "ssh-private-key-file", "",
		"File path to the private ssh key for private repository sync")
	cmd.Flags().StringVar(&options.HTTPSUser, "https-user", "",
		"HTTPS username for private repository sync")
	cmd.Flags().StringVar(&options.HTTPSKey, "https-key", "",
		"HTTPS token/password for private repository sync, supports ${VAR} expansion")
	cmd.Flags().StringVar(&options.KnownHosts, "known-hosts", "",
		"Base64-encoded known_hosts data containing public SSH keys required to access private git instances")
	cmd.Flags().StringVar(&options.KnownHostsFile, "known-hosts-file", "",
		"File path to known_hosts contents containing public SSH keys required to access private git instances")
	cmd.Flags().StringVar(&options.HTTPSCACert, "https-ca-cert", "",
		"Base64-encoded HTTPS CA certificate for TLS communication with private repository sync")
	cmd.Flags().StringVar(&options.HTTPSCACertFile, "https-ca-cert-file", "",
		"File path to HTTPS CA certificate file for TLS communication with private repository sync")

	cmd.Flags().StringVar(&options.BucketName, "bucket-name", "", "Name of the S3 bucket to sync")
	cmd.Flags().StringVar(&options.BucketAccessKey, "bucket-access-key", "",
		"Access key id used to authenticate with the bucket, supports ${VAR} expansion")
	cmd.Flags().StringVar(&options.BucketSecretKey, "bucket-secret-key", "",
		"Secret key used to authenticate with the bucket, supports ${VAR} expansion")
	cmd.Flags().BoolVar(&options.BucketInsecure, "bucket-insecure", false,
		"Communicate with the bucket without TLS")

	return options
}

// ExpandSecrets applies ${VAR} environment expansion to the credential-bearing
// source parameters.
func ExpandSecrets(options *source.Options) {
	options.HTTPSUser = envvar.Expand(options.HTTPSUser)
	options.HTTPSKey = envvar.Expand(options.HTTPSKey)
	options.BucketAccessKey = envvar.Expand(options.BucketAccessKey)
	options.BucketSecretKey = envvar.Expand(options.BucketSecretKey)
}

// RegisterKustomizations adds the repeatable --kustomization flag to a command.
func RegisterKustomizations(cmd *cobra.Command) *[]string {
	var values []string

	cmd.Flags().StringArrayVarP(&values, "kustomization", "k", nil,
		"Define a kustomization as space-separated key=value pairs "+
			"(name= path= depends_on= timeout= sync_interval= retry_interval= prune= force=), repeatable")

	return &values
}

// ParseKustomizations converts the raw --kustomization values into definitions.
func ParseKustomizations(values []string) ([]parse.Kustomization, error) {
	kustomizations, err := parse.Kustomizations(values)
	if err != nil {
		return nil, fmt.Errorf("invalid --kustomization: %w", err)
	}

	return kustomizations, nil
}
