// Package client provides clients for the remote services arcflux talks to.
//
// Subpackages:
//
//   - azure: ARM clients for the KubernetesConfiguration resource provider,
//     narrowed to the operations the CLI uses and mockable for tests
package client
