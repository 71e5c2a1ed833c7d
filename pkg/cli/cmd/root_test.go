package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/arcflux/arcflux/pkg/cli/cmd"
	cliflags "github.com/arcflux/arcflux/pkg/cli/flags"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/spf13/cobra"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	version := "1.2.3"
	commit := "abc123"
	date := "2026-08-23"
	root := cmd.NewRootCmd(version, commit, date)

	expectedVersion := version + " (Built on " + date + " from Git SHA " + commit + ")"
	if root.Version != expectedVersion {
		t.Fatalf("unexpected version string. want %q, got %q", expectedVersion, root.Version)
	}
}

func TestExecuteShowsHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestExecuteShowsHelpFlag(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--help"})

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2026-08-23")
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestNewRootCmdTimingFlagDefaultFalse(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	flag := root.PersistentFlags().Lookup(cliflags.TimingFlagName)
	if flag == nil {
		t.Fatalf("expected persistent flag %q to exist", cliflags.TimingFlagName)
	}

	got, err := root.PersistentFlags().GetBool(cliflags.TimingFlagName)
	if err != nil {
		t.Fatalf("expected to read %q flag: %v", cliflags.TimingFlagName, err)
	}

	if got {
		t.Fatalf("expected %q to default to false", cliflags.TimingFlagName)
	}
}

func TestNewRootCmdHasFluxCommand(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	fluxCmd, _, err := root.Find([]string{"flux"})
	if err != nil {
		t.Fatalf("expected flux command to be registered: %v", err)
	}

	if fluxCmd.Name() != "flux" {
		t.Fatalf("expected to find the flux command, got %q", fluxCmd.Name())
	}
}

func TestExecuteWrapsCommandErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	failing := &cobra.Command{
		Use:           "fail",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(*cobra.Command, []string) error { return errBoom },
	}

	var out bytes.Buffer

	failing.SetOut(&out)
	failing.SetErr(&out)

	err := cmd.Execute(failing)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected the cause to be preserved, got %v", err)
	}
}

func TestExecuteReturnsNilOnSuccess(t *testing.T) {
	t.Parallel()

	succeeding := &cobra.Command{
		Use:  "ok",
		RunE: func(*cobra.Command, []string) error { return nil },
	}

	var out bytes.Buffer

	succeeding.SetOut(&out)

	err := cmd.Execute(succeeding)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
