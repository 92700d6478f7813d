package usecasecontract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// PublishVideoInput carries the metadata for a new video. The media files are
// already uploaded by the external storage collaborator; only the resulting
// URLs arrive here.
type PublishVideoInput struct {
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
	Duration    float64
}

// VideoUpdate carries the mutable video fields; nil means unchanged.
type VideoUpdate struct {
	Title       *string
	Description *string
	Thumbnail   *string
}

type IVideoUsecase interface {
	PublishVideo(ctx context.Context, actorID string, input PublishVideoInput) (*entity.Video, error)
	GetVideoByID(ctx context.Context, videoID string) (*entity.Video, error)
	ListVideos(ctx context.Context, opts contract.VideoListOptions) ([]*entity.Video, int64, error)
	UpdateVideo(ctx context.Context, actorID, videoID string, update VideoUpdate) (*entity.Video, error)
	DeleteVideo(ctx context.Context, actorID, videoID string) error
	TogglePublishStatus(ctx context.Context, actorID, videoID string) (*entity.Video, error)
}
