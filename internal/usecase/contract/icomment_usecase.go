package usecasecontract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

type ICommentUsecase interface {
	AddComment(ctx context.Context, actorID, videoID, content string) (*entity.Comment, error)
	GetVideoComments(ctx context.Context, videoID string) ([]*entity.Comment, error)
	UpdateComment(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
}
