package contract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

type ITweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	GetByID(ctx context.Context, id string) (*entity.Tweet, error)
	// ListByOwnerID returns all tweets by a user with the owner profile
	// populated, newest first.
	ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Tweet, error)
	Update(ctx context.Context, tweet *entity.Tweet) error
	Delete(ctx context.Context, id string) error
}
