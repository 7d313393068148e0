package usecases

import (
	"context"
	"fmt"

	"upravdom/internal/domain/organization"
	"upravdom/internal/domain/user"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username                   string
	Password                   string
	Position                   string
	OrganizationID             *uint
	ImplementingOrganizationID *uint
}

type RegisterUserResult struct {
	UserID   uint
	Username string
}

type RegisterUserUseCase struct {
	userRepo       user.Repository
	orgRepo        organization.Repository
	implOrgRepo    organization.ImplementingRepository
	passwordHasher PasswordHasher
	logger         logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	orgRepo organization.Repository,
	implOrgRepo organization.ImplementingRepository,
	passwordHasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		orgRepo:        orgRepo,
		implOrgRepo:    implOrgRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register user command", "error", err)
		return nil, err
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username); err == nil && existing != nil {
		return nil, errors.NewConflictError("username is already taken")
	}

	if cmd.OrganizationID != nil {
		if _, err := uc.orgRepo.GetByID(ctx, *cmd.OrganizationID); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("organization %d not found", *cmd.OrganizationID))
		}
	}
	if cmd.ImplementingOrganizationID != nil {
		if _, err := uc.implOrgRepo.GetByID(ctx, *cmd.ImplementingOrganizationID); err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("implementing organization %d not found", *cmd.ImplementingOrganizationID))
		}
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	account, err := user.NewUser(cmd.Username, hash, cmd.Position, cmd.OrganizationID, cmd.ImplementingOrganizationID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, account); err != nil {
		uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("username is already taken")
		}
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user registered successfully", "user_id", account.ID(), "username", account.Username())

	return &RegisterUserResult{UserID: account.ID(), Username: account.Username()}, nil
}

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) error {
	if len(cmd.Username) == 0 {
		return errors.NewValidationError("username is required")
	}
	if len(cmd.Username) > 20 {
		return errors.NewValidationError("username exceeds maximum length of 20 characters")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if cmd.OrganizationID == nil && cmd.ImplementingOrganizationID == nil {
		return errors.NewValidationError("user must belong to an organization or an implementing organization")
	}
	return nil
}
