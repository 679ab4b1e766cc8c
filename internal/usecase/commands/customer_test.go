//go:build unit

package commands_test

import (
	"context"
	"testing"

	"admin-dashboard/internal/infra"
	"admin-dashboard/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Update(ctx context.Context, chatID string, input commands.UpdateCustomerInput) error {
	args := m.Called(ctx, chatID, input)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, chatID string) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

func TestCustomerUpdate(t *testing.T) {
	input := commands.UpdateCustomerInput{Name: "Alice", Phone: "+1555", Language: "en"}

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{
			name: "success",
		},
		{
			name:    "missing row maps to not found",
			repoErr: infra.WrapRepoErr("customer not found", nil, infra.KindNotFound),
			wantErr: commands.ErrCustomerNotFound,
		},
		{
			name:    "store failure passes through",
			repoErr: infra.WrapRepoErr("update customer", assert.AnError),
			wantErr: nil, // checked separately below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCustomerRepository)
			repo.On("Update", mock.Anything, "chat-1", input).Return(tt.repoErr)

			err := commands.NewCustomerCommands(repo).Update(context.Background(), "chat-1", input)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.repoErr != nil:
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindStoreUnavailable))
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerDeleteNotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("Delete", mock.Anything, "chat-404").
		Return(infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))

	err := commands.NewCustomerCommands(repo).Delete(context.Background(), "chat-404")

	assert.ErrorIs(t, err, commands.ErrCustomerNotFound)
}
