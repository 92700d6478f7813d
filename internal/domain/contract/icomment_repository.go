package contract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	// ListByVideoID returns all comments on a video with the owner profile
	// populated, newest first.
	ListByVideoID(ctx context.Context, videoID string) ([]*entity.Comment, error)
	// Update persists the comment content.
	Update(ctx context.Context, comment *entity.Comment) error
	// Delete removes the comment document.
	Delete(ctx context.Context, id string) error
}
