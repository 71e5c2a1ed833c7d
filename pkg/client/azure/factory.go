package azure

import "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

// Factory builds the ARM client bundle for a subscription. It exists so
// commands can resolve client construction through the runtime container and
// tests can substitute fakes.
type Factory interface {
	Create(subscriptionID string, options *arm.ClientOptions) (*Clients, error)
}

// DefaultFactory builds real ARM-backed clients with the default credential chain.
type DefaultFactory struct{}

// Create implements Factory.
func (DefaultFactory) Create(subscriptionID string, options *arm.ClientOptions) (*Clients, error) {
	return NewClients(subscriptionID, options)
}
