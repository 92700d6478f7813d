package usecasecontract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

type ILikeUsecase interface {
	// ToggleLike flips the actor's like relationship with the target,
	// creating the relationship document on first use. The returned record
	// reflects the post-toggle state.
	ToggleLike(ctx context.Context, actorID string, kind entity.TargetKind, targetID string) (*entity.Like, error)
	// GetLikedVideos returns all videos the actor currently likes.
	GetLikedVideos(ctx context.Context, actorID string) ([]*entity.Video, error)
}
