package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type videoUsecase struct {
	videoRepo contract.IVideoRepository
	userRepo  contract.IUserRepository
	cache     contract.IVideoCache
	logger    usecasecontract.IAppLogger
}

func NewVideoUsecase(
	videoRepo contract.IVideoRepository,
	userRepo contract.IUserRepository,
	logger usecasecontract.IAppLogger,
) *videoUsecase {
	return &videoUsecase{
		videoRepo: videoRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

var _ usecasecontract.IVideoUsecase = (*videoUsecase)(nil)

// SetCache injects an optional listing cache.
func (u *videoUsecase) SetCache(cache contract.IVideoCache) {
	u.cache = cache
}

// PublishVideo stores the metadata of an already-uploaded video.
func (u *videoUsecase) PublishVideo(ctx context.Context, actorID string, input usecasecontract.PublishVideoInput) (*entity.Video, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperror.Errorf(apperror.EInvalidContent, "Title and description are required")
	}
	if input.VideoFile == "" || input.Thumbnail == "" {
		return nil, apperror.Errorf(apperror.EInvalidContent, "Video and thumbnail files must be uploaded")
	}
	if _, err := u.userRepo.GetUserByID(ctx, actorID); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.Errorf(apperror.ENotFound, "User not found")
		}
		return nil, apperror.Wrap(err, "Failed to fetch user")
	}

	video := &entity.Video{
		OwnerID:     actorID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		VideoFile:   input.VideoFile,
		Thumbnail:   input.Thumbnail,
		Duration:    input.Duration,
		Views:       0,
		IsPublished: true,
	}
	if err := u.videoRepo.Create(ctx, video); err != nil {
		return nil, apperror.Wrap(err, "Failed to save video")
	}
	u.invalidateListings(ctx)
	return video, nil
}

func (u *videoUsecase) GetVideoByID(ctx context.Context, videoID string) (*entity.Video, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, mapNotFound(err, contract.ErrVideoNotFound, "Video")
	}
	return video, nil
}

// ListVideos pages through videos. Sort is an explicit {field, direction}
// pair; an unknown field is rejected rather than silently remapped.
func (u *videoUsecase) ListVideos(ctx context.Context, opts contract.VideoListOptions) ([]*entity.Video, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 || opts.PageSize > 100 {
		opts.PageSize = 10
	}
	if opts.SortBy == "" {
		opts.SortBy = contract.VideoSortByCreatedAt
		opts.Direction = contract.SortDescending
	}
	switch opts.SortBy {
	case contract.VideoSortByCreatedAt, contract.VideoSortByViews, contract.VideoSortByDuration, contract.VideoSortByTitle:
	default:
		return nil, 0, apperror.Errorf(apperror.EInvalidIdentifier, "Unknown sort field %q", opts.SortBy)
	}
	if opts.Direction != contract.SortAscending && opts.Direction != contract.SortDescending {
		opts.Direction = contract.SortDescending
	}

	key := listCacheKey(opts)
	if u.cache != nil {
		if page, ok, err := u.cache.GetVideosPage(ctx, key); err == nil && ok {
			return page.Videos, page.Total, nil
		}
	}

	videos, total, err := u.videoRepo.List(ctx, opts)
	if err != nil {
		return nil, 0, apperror.Wrap(err, "Failed to list videos")
	}
	if videos == nil {
		videos = []*entity.Video{}
	}
	if u.cache != nil {
		_ = u.cache.SetVideosPage(ctx, key, &contract.CachedVideosPage{Videos: videos, Total: total})
	}
	return videos, total, nil
}

// UpdateVideo edits title, description or thumbnail. Only the owner may edit.
func (u *videoUsecase) UpdateVideo(ctx context.Context, actorID, videoID string, update usecasecontract.VideoUpdate) (*entity.Video, error) {
	video, err := u.fetchAndAuthorize(ctx, actorID, videoID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, apperror.Errorf(apperror.EInvalidContent, "Title cannot be empty")
		}
		video.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		video.Description = *update.Description
	}
	if update.Thumbnail != nil {
		video.Thumbnail = *update.Thumbnail
	}
	if err := u.videoRepo.Update(ctx, video); err != nil {
		return nil, apperror.Wrap(err, "Failed to update video")
	}
	u.invalidateListings(ctx)
	return video, nil
}

// DeleteVideo removes a video after the ownership check passes.
func (u *videoUsecase) DeleteVideo(ctx context.Context, actorID, videoID string) error {
	if _, err := u.fetchAndAuthorize(ctx, actorID, videoID); err != nil {
		return err
	}
	if err := u.videoRepo.Delete(ctx, videoID); err != nil {
		if errors.Is(err, contract.ErrVideoNotFound) {
			return apperror.Errorf(apperror.ENotFound, "Video not found")
		}
		return apperror.Wrap(err, "Failed to delete video")
	}
	u.invalidateListings(ctx)
	return nil
}

// TogglePublishStatus flips the video's published flag.
func (u *videoUsecase) TogglePublishStatus(ctx context.Context, actorID, videoID string) (*entity.Video, error) {
	video, err := u.fetchAndAuthorize(ctx, actorID, videoID)
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	if err := u.videoRepo.Update(ctx, video); err != nil {
		return nil, apperror.Wrap(err, "Failed to update video")
	}
	u.invalidateListings(ctx)
	return video, nil
}

func (u *videoUsecase) fetchAndAuthorize(ctx context.Context, actorID, videoID string) (*entity.Video, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, mapNotFound(err, contract.ErrVideoNotFound, "Video")
	}
	if err := authorizeOwner(actorID, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (u *videoUsecase) invalidateListings(ctx context.Context) {
	if u.cache != nil {
		_ = u.cache.InvalidateVideoLists(ctx)
	}
}

func listCacheKey(opts contract.VideoListOptions) string {
	return fmt.Sprintf("videos:list:%s:%s:%t:%s:%d:%d:%d",
		opts.OwnerID, opts.Query, opts.PublishedOnly, opts.SortBy, opts.Direction, opts.Page, opts.PageSize)
}
