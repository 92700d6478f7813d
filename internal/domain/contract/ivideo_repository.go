package contract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// VideoSortField enumerates the fields video listings may be sorted on.
// Sorting is an explicit {field, direction} pair; there is no implicit
// fallthrough between keys.
type VideoSortField string

const (
	VideoSortByCreatedAt VideoSortField = "created_at"
	VideoSortByViews     VideoSortField = "views"
	VideoSortByDuration  VideoSortField = "duration"
	VideoSortByTitle     VideoSortField = "title"
)

type SortDirection int

const (
	SortAscending  SortDirection = 1
	SortDescending SortDirection = -1
)

// VideoListOptions narrows and orders a video listing.
type VideoListOptions struct {
	OwnerID       string
	Query         string
	PublishedOnly bool
	SortBy        VideoSortField
	Direction     SortDirection
	Page          int
	PageSize      int
}

type IVideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	// GetByIDs retrieves the videos whose ids appear in ids, preserving the
	// order of ids. Missing ids are skipped, not errors.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Video, error)
	List(ctx context.Context, opts VideoListOptions) ([]*entity.Video, int64, error)
	// Update persists title, description, thumbnail and publish status.
	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, id string) error
}
