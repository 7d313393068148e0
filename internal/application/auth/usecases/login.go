package usecases

import (
	"context"
	"time"

	"upravdom/internal/domain/user"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    uint
	Username  string
	Position  string
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	passwordHasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Username) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("username and password are required")
	}

	account, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil || account == nil {
		// Do not reveal whether the username exists.
		uc.logger.Warnw("login failed, unknown username", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.passwordHasher.Compare(account.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("login failed, wrong password", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresAt, err := uc.jwtService.Generate(account.ID(), account.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", account.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate access token")
	}

	uc.logger.Infow("user logged in successfully", "user_id", account.ID())

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    account.ID(),
		Username:  account.Username(),
		Position:  account.Position(),
	}, nil
}
