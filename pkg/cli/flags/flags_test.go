package flags_test

import (
	"testing"

	"github.com/arcflux/arcflux/pkg/cli/config"
	"github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/arcflux/arcflux/pkg/utils/parse"
	"github.com/arcflux/arcflux/pkg/utils/timer"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClusterCommand() (*cobra.Command, *flags.Cluster) {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cluster := flags.RegisterCluster(cmd)

	return cmd, cluster
}

func TestClusterScope_FromFlags(t *testing.T) {
	cmd, cluster := newClusterCommand()
	cmd.SetArgs([]string{
		"--resource-group", "rg",
		"--cluster-name", "arc-cluster",
		"--subscription", "flag-sub",
	})
	require.NoError(t, cmd.Execute())

	scope, err := cluster.Scope(config.NewManager())
	require.NoError(t, err)
	assert.Equal(t, "flag-sub", scope.SubscriptionID)
	assert.Equal(t, azure.ClusterTypeConnectedClusters, scope.ClusterType)
}

func TestClusterScope_SubscriptionFromEnvironment(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "env-sub")

	cmd, cluster := newClusterCommand()
	cmd.SetArgs([]string{"--resource-group", "rg", "--cluster-name", "arc-cluster"})
	require.NoError(t, cmd.Execute())

	scope, err := cluster.Scope(config.NewManager())
	require.NoError(t, err)
	assert.Equal(t, "env-sub", scope.SubscriptionID)
}

func TestClusterScope_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "env-sub")

	cmd, cluster := newClusterCommand()
	cmd.SetArgs([]string{
		"--resource-group", "rg",
		"--cluster-name", "arc-cluster",
		"--subscription", "flag-sub",
	})
	require.NoError(t, cmd.Execute())

	scope, err := cluster.Scope(config.NewManager())
	require.NoError(t, err)
	assert.Equal(t, "flag-sub", scope.SubscriptionID)
}

func TestClusterScope_MissingSubscription(t *testing.T) {
	t.Setenv("AZURE_SUBSCRIPTION_ID", "")

	cmd, cluster := newClusterCommand()
	cmd.SetArgs([]string{"--resource-group", "rg", "--cluster-name", "arc-cluster"})
	require.NoError(t, cmd.Execute())

	_, err := cluster.Scope(config.NewManager())
	require.ErrorIs(t, err, flags.ErrSubscriptionRequired)
}

func TestClusterScope_ManagedClusterType(t *testing.T) {
	cmd, cluster := newClusterCommand()
	cmd.SetArgs([]string{
		"-g", "rg", "-c", "aks-cluster",
		"-t", azure.ClusterTypeManagedClusters,
		"--subscription", "sub",
	})
	require.NoError(t, cmd.Execute())

	scope, err := cluster.Scope(config.NewManager())
	require.NoError(t, err)
	assert.Equal(t, azure.ManagedRPNamespace, scope.ClusterRP())
}

func TestExpandSecrets(t *testing.T) {
	t.Setenv("GIT_TOKEN", "s3cr3t")

	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	options := flags.RegisterSource(cmd)
	cmd.SetArgs([]string{
		"--url", "https://github.com/org/repo",
		"--https-user", "ci-bot",
		"--https-key", "${GIT_TOKEN}",
	})
	require.NoError(t, cmd.Execute())

	flags.ExpandSecrets(options)

	assert.Equal(t, "s3cr3t", options.HTTPSKey)
	assert.Equal(t, "ci-bot", options.HTTPSUser)
}

func TestParseKustomizations(t *testing.T) {
	t.Parallel()

	kustomizations, err := flags.ParseKustomizations([]string{
		"name=apps path=./apps prune=true",
	})
	require.NoError(t, err)
	require.Len(t, kustomizations, 1)
	assert.Equal(t, "apps", kustomizations[0].Name)
}

func TestParseKustomizations_Invalid(t *testing.T) {
	t.Parallel()

	_, err := flags.ParseKustomizations([]string{"path=./apps"})
	require.ErrorIs(t, err, parse.ErrInvalidKustomization)
	assert.Contains(t, err.Error(), "--kustomization")
}

func TestMaybeTimer(t *testing.T) {
	t.Parallel()

	tmr := timer.New()

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool(flags.TimingFlagName, false, "")

	assert.Nil(t, flags.MaybeTimer(cmd, tmr))

	require.NoError(t, cmd.Flags().Set(flags.TimingFlagName, "true"))
	assert.Equal(t, tmr, flags.MaybeTimer(cmd, tmr))

	assert.Nil(t, flags.MaybeTimer(nil, tmr))
}

func TestMaybeTimer_FlagAbsent(t *testing.T) {
	t.Parallel()

	assert.Nil(t, flags.MaybeTimer(&cobra.Command{Use: "test"}, timer.New()))
}
