package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"upravdom/internal/domain/organization"
	"upravdom/internal/domain/user"
	"upravdom/internal/shared/errors"
)

func newRegisterUseCase(userRepo *mockUserRepository, orgRepo *mockOrganizationRepository, implOrgRepo *mockImplementingOrganizationRepository) *RegisterUserUseCase {
	return NewRegisterUserUseCase(userRepo, orgRepo, implOrgRepo, &mockPasswordHasher{}, &mockLogger{})
}

func TestRegisterUser_Success(t *testing.T) {
	orgID := uint(1)

	var created *user.User
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			created = u
			return u.SetID(2)
		},
	}

	uc := newRegisterUseCase(userRepo, &mockOrganizationRepository{}, &mockImplementingOrganizationRepository{})
	result, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username:       "dispatcher2",
		Password:       "secret-password",
		Position:       "Диспетчер",
		OrganizationID: &orgID,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(2), result.UserID)
	assert.Equal(t, "dispatcher2", result.Username)
	require.NotNil(t, created)
	assert.Equal(t, "hashed:secret-password", created.PasswordHash())
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	orgID := uint(1)
	now := time.Now()
	existing, err := user.ReconstructUser(1, "dispatcher2", "hash", "", &orgID, nil, now, now)
	require.NoError(t, err)

	userRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return existing, nil
		},
	}

	uc := newRegisterUseCase(userRepo, &mockOrganizationRepository{}, &mockImplementingOrganizationRepository{})
	_, err = uc.Execute(context.Background(), RegisterUserCommand{
		Username:       "dispatcher2",
		Password:       "secret-password",
		OrganizationID: &orgID,
	})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestRegisterUser_UnknownOrganization(t *testing.T) {
	orgID := uint(99)
	orgRepo := &mockOrganizationRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*organization.Organization, error) {
			return nil, fmt.Errorf("organization not found")
		},
	}

	uc := newRegisterUseCase(&mockUserRepository{}, orgRepo, &mockImplementingOrganizationRepository{})
	_, err := uc.Execute(context.Background(), RegisterUserCommand{
		Username:       "dispatcher2",
		Password:       "secret-password",
		OrganizationID: &orgID,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRegisterUser_Validation(t *testing.T) {
	orgID := uint(1)
	uc := newRegisterUseCase(&mockUserRepository{}, &mockOrganizationRepository{}, &mockImplementingOrganizationRepository{})

	tests := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"missing username", RegisterUserCommand{Password: "secret-password", OrganizationID: &orgID}},
		{"username too long", RegisterUserCommand{Username: "very-long-username-over-limit", Password: "secret-password", OrganizationID: &orgID}},
		{"short password", RegisterUserCommand{Username: "dispatcher2", Password: "short", OrganizationID: &orgID}},
		{"no organization", RegisterUserCommand{Username: "dispatcher2", Password: "secret-password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
