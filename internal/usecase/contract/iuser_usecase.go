package usecasecontract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// RegisterInput is the payload for creating a new user account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

type IUserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	// Login verifies credentials and issues an access and refresh token pair.
	Login(ctx context.Context, email, password string) (*entity.User, string, string, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
}
