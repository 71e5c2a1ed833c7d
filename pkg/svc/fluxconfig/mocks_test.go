package fluxconfig_test

import (
	"context"

	"github.com/arcflux/arcflux/pkg/client/azure"
	"github.com/stretchr/testify/mock"
)

// mockConfirmer is a mock implementation of the Confirmer interface.
type mockConfirmer struct {
	mock.Mock
}

func newMockConfirmer() *mockConfirmer {
	return &mockConfirmer{}
}

func (m *mockConfirmer) Confirm(message string) bool {
	args := m.Called(message)

	return args.Bool(0)
}

// approveAll accepts every confirmation prompt.
func (m *mockConfirmer) approveAll() *mockConfirmer {
	m.On("Confirm", mock.Anything).Return(true)

	return m
}

// mockPrevalidator is a mock implementation of the Prevalidator interface.
type mockPrevalidator struct {
	mock.Mock
}

func newMockPrevalidator() *mockPrevalidator {
	return &mockPrevalidator{}
}

func (m *mockPrevalidator) Validate(ctx context.Context, scope azure.ClusterScope, noWait bool) error {
	args := m.Called(ctx, scope, noWait)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// pass accepts every validation.
func (m *mockPrevalidator) pass() *mockPrevalidator {
	m.On("Validate", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	return m
}
