package contract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// CachedVideosPage is the serialized form of one page of a video listing.
type CachedVideosPage struct {
	Videos []*entity.Video `json:"videos"`
	Total  int64           `json:"total"`
}

// IVideoCache caches video listings and per-channel subscriber counts.
// The cache is optional; usecases must behave identically without one.
type IVideoCache interface {
	GetVideosPage(ctx context.Context, key string) (*CachedVideosPage, bool, error)
	SetVideosPage(ctx context.Context, key string, page *CachedVideosPage) error
	InvalidateVideoLists(ctx context.Context) error

	GetSubscriberCount(ctx context.Context, channelID string) (int64, bool, error)
	SetSubscriberCount(ctx context.Context, channelID string, count int64) error
	InvalidateSubscriberCount(ctx context.Context, channelID string) error
}
