package usecase

import (
	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// JWTService defines the interface for token operations.
type JWTService interface {
	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
	ParseRefreshToken(token string) (*entity.Claims, error)
}
