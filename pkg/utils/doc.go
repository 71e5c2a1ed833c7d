// Package utils provides utility packages for common operations.
//
// This package contains subpackages with utility functions used across
// the arcflux codebase:
//
//   - clierr: Errors carrying a user-facing recommendation line
//   - envvar: ${VAR} environment expansion for credential flags
//   - notify: Formatted message display with symbols, colors, and timing
//   - parse: Flag value parsing (durations, kustomizations, key material)
//   - timer: Execution time tracking for single and multi-stage operations
//
// These utilities are designed to be simple, focused, and reusable across
// different parts of the application.
package utils
