// Package cli provides the command surface of arcflux.
//
// This package is organized into subpackages for different functionality:
//
//   - cli/cmd: Cobra command definitions for the flux configuration commands
//   - cli/config: Environment-backed configuration resolution via Viper
//   - cli/flags: Shared flag sets for cluster identity, sources, and kustomizations
//   - cli/helpers: Command wiring helpers for dependency resolution and output
//   - cli/ui: User interface components (confirmation prompts, error handling)
//
// Commands resolve their collaborators through the runtime container in
// pkg/di so tests can substitute the Azure client factory and timer.
package cli
