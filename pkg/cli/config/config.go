// Package config resolves CLI configuration from environment variables
// through a shared Viper instance. Flags take precedence; commands consult
// the Manager only when the corresponding flag was left unset.
package config

import (
	"strings"

	"github.com/arcflux/arcflux/pkg/svc/prereq"
	"github.com/spf13/viper"
)

// Viper keys for the environment bindings.
const (
	keySubscriptionID = "subscription-id"
	keyReleaseTrain   = "extension-release-train"
	keyVersion        = "extension-version"
	keyEnvironment    = "environment"
)

// dogfoodEnvironment names the non-production control plane where no
// extension identity is attached.
const dogfoodEnvironment = "dogfood"

// Manager holds the Viper instance shared by all commands of one invocation.
type Manager struct {
	Viper *viper.Viper
}

// NewManager initializes a Manager with the environment bindings the CLI honors.
func NewManager() *Manager {
	viperInstance := viper.New()

	_ = viperInstance.BindEnv(keySubscriptionID, "AZURE_SUBSCRIPTION_ID")
	_ = viperInstance.BindEnv(keyReleaseTrain, "FLUX_EXTENSION_RELEASETRAIN")
	_ = viperInstance.BindEnv(keyVersion, "FLUX_EXTENSION_VERSION")
	_ = viperInstance.BindEnv(keyEnvironment, "AZURE_ENVIRONMENT")

	return &Manager{Viper: viperInstance}
}

// SubscriptionID returns the target subscription from the
// AZURE_SUBSCRIPTION_ID environment variable.
func (m *Manager) SubscriptionID() string {
	return m.Viper.GetString(keySubscriptionID)
}

// ExtensionSettings returns the flux extension install defaults carried by
// the environment.
func (m *Manager) ExtensionSettings() prereq.Settings {
	return prereq.Settings{
		ReleaseTrain: m.Viper.GetString(keyReleaseTrain),
		Version:      m.Viper.GetString(keyVersion),
		Dogfood:      strings.EqualFold(m.Viper.GetString(keyEnvironment), dogfoodEnvironment),
	}
}
