package usecases

import (
	"context"
	"time"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// JWTService mints access tokens for authenticated users.
type JWTService interface {
	Generate(userID uint, username string) (token string, expiresAt time.Time, err error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*CurrentUserResult, error)
}
