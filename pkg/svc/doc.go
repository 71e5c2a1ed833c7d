// Package svc provides the service layer of arcflux.
//
// This package contains the business logic that coordinates between the CLI
// commands and the Azure clients.
//
// Subpackages:
//   - fluxconfig: Flux configuration and kustomization lifecycle operations
//   - prereq: Cluster-level prerequisite checks and flux extension install
//   - source: Git and bucket source definition generation and validation
package svc
