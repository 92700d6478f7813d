package contract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// ILikeRepository defines persistence for like relationships. The uniqueness
// invariant — one document per (target_kind, target_id, liked_by) triple —
// is the implementation's to uphold.
type ILikeRepository interface {
	// GetByTargetAndActor retrieves the unique like document for the triple,
	// regardless of its current IsLiked value.
	GetByTargetAndActor(ctx context.Context, kind entity.TargetKind, targetID, actorID string) (*entity.Like, error)
	Create(ctx context.Context, like *entity.Like) error
	// Update persists the IsLiked flag of an existing document.
	Update(ctx context.Context, like *entity.Like) error
	// ListLikedVideoIDs returns the target ids of all video likes by the
	// actor whose IsLiked flag is currently set.
	ListLikedVideoIDs(ctx context.Context, actorID string) ([]string, error)
}
