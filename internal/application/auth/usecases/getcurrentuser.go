package usecases

import (
	"context"

	"upravdom/internal/domain/user"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type CurrentUserResult struct {
	UserID                     uint
	Username                   string
	Position                   string
	OrganizationID             *uint
	ImplementingOrganizationID *uint
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, userID uint) (*CurrentUserResult, error) {
	if userID == 0 {
		return nil, errors.NewUnauthorizedError("user not authenticated")
	}

	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || account == nil {
		uc.logger.Warnw("authenticated user no longer exists", "user_id", userID, "error", err)
		return nil, errors.NewNotFoundError("user not found")
	}

	return &CurrentUserResult{
		UserID:                     account.ID(),
		Username:                   account.Username(),
		Position:                   account.Position(),
		OrganizationID:             account.OrganizationID(),
		ImplementingOrganizationID: account.ImplementingOrganizationID(),
	}, nil
}
