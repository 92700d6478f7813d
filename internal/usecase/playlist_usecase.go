package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type playlistUsecase struct {
	playlistRepo contract.IPlaylistRepository
	videoRepo    contract.IVideoRepository
	logger       usecasecontract.IAppLogger
}

func NewPlaylistUsecase(
	playlistRepo contract.IPlaylistRepository,
	videoRepo contract.IVideoRepository,
	logger usecasecontract.IAppLogger,
) usecasecontract.IPlaylistUsecase {
	return &playlistUsecase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		logger:       logger,
	}
}

func (u *playlistUsecase) CreatePlaylist(ctx context.Context, actorID, name, description string) (*entity.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperror.Errorf(apperror.EInvalidContent, "Playlist name cannot be empty")
	}
	playlist := &entity.Playlist{
		OwnerID:     actorID,
		Name:        strings.TrimSpace(name),
		Description: description,
		VideoIDs:    []string{},
	}
	if err := u.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, apperror.Wrap(err, "Failed to create playlist")
	}
	return playlist, nil
}

// GetPlaylistByID fetches a playlist with its video references populated.
func (u *playlistUsecase) GetPlaylistByID(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	if err := validateID(playlistID, "playlist"); err != nil {
		return nil, err
	}
	playlist, err := u.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, mapNotFound(err, contract.ErrPlaylistNotFound, "Playlist")
	}
	if len(playlist.VideoIDs) > 0 {
		videos, err := u.videoRepo.GetByIDs(ctx, playlist.VideoIDs)
		if err != nil {
			return nil, apperror.Wrap(err, "Failed to populate playlist videos")
		}
		playlist.Videos = videos
	}
	return playlist, nil
}

func (u *playlistUsecase) GetUserPlaylists(ctx context.Context, userID string) ([]*entity.Playlist, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}
	playlists, err := u.playlistRepo.ListByOwnerID(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to list playlists")
	}
	if playlists == nil {
		playlists = []*entity.Playlist{}
	}
	return playlists, nil
}

func (u *playlistUsecase) ListPlaylists(ctx context.Context, page, pageSize int) ([]*entity.Playlist, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	playlists, total, err := u.playlistRepo.List(ctx, contract.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, 0, apperror.Wrap(err, "Failed to list playlists")
	}
	if playlists == nil {
		playlists = []*entity.Playlist{}
	}
	return playlists, total, nil
}

// UpdatePlaylist edits name and description. Only the owner may edit.
func (u *playlistUsecase) UpdatePlaylist(ctx context.Context, actorID, playlistID string, update usecasecontract.PlaylistUpdate) (*entity.Playlist, error) {
	playlist, err := u.fetchAndAuthorize(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, apperror.Errorf(apperror.EInvalidContent, "Playlist name cannot be empty")
		}
		playlist.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		playlist.Description = *update.Description
	}
	if err := u.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, apperror.Wrap(err, "Failed to update playlist")
	}
	return playlist, nil
}

// DeletePlaylist removes the playlist after the ownership check passes and
// returns the deleted representation.
func (u *playlistUsecase) DeletePlaylist(ctx context.Context, actorID, playlistID string) (*entity.Playlist, error) {
	playlist, err := u.fetchAndAuthorize(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}
	if err := u.playlistRepo.Delete(ctx, playlistID); err != nil {
		if errors.Is(err, contract.ErrPlaylistNotFound) {
			return nil, apperror.Errorf(apperror.ENotFound, "Playlist not found")
		}
		return nil, apperror.Wrap(err, "Failed to delete playlist")
	}
	return playlist, nil
}

// AddVideoToPlaylist appends a video reference. Duplicates are permitted.
func (u *playlistUsecase) AddVideoToPlaylist(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	playlist, err := u.fetchAndAuthorize(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, mapNotFound(err, contract.ErrVideoNotFound, "Video")
	}

	playlist.VideoIDs = append(playlist.VideoIDs, videoID)
	if err := u.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, apperror.Wrap(err, "Failed to update playlist")
	}
	return playlist, nil
}

// RemoveVideoFromPlaylist drops every reference to the video.
func (u *playlistUsecase) RemoveVideoFromPlaylist(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	playlist, err := u.fetchAndAuthorize(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}

	kept := playlist.VideoIDs[:0]
	for _, id := range playlist.VideoIDs {
		if id != videoID {
			kept = append(kept, id)
		}
	}
	playlist.VideoIDs = kept
	if err := u.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, apperror.Wrap(err, "Failed to update playlist")
	}
	return playlist, nil
}

// fetchAndAuthorize is the shared front half of every playlist mutation:
// id syntax, fetch, ownership guard, in that order.
func (u *playlistUsecase) fetchAndAuthorize(ctx context.Context, actorID, playlistID string) (*entity.Playlist, error) {
	if err := validateID(playlistID, "playlist"); err != nil {
		return nil, err
	}
	playlist, err := u.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, mapNotFound(err, contract.ErrPlaylistNotFound, "Playlist")
	}
	if err := authorizeOwner(actorID, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}
