package contract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// Pagination bounds a listing query.
type Pagination struct {
	Page     int
	PageSize int
}

type IPlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	List(ctx context.Context, pagination Pagination) ([]*entity.Playlist, int64, error)
	// Update persists name, description and the video reference sequence.
	Update(ctx context.Context, playlist *entity.Playlist) error
	Delete(ctx context.Context, id string) error
}
