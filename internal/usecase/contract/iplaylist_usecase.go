package usecasecontract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

// PlaylistUpdate carries the mutable playlist fields; nil means unchanged.
type PlaylistUpdate struct {
	Name        *string
	Description *string
}

type IPlaylistUsecase interface {
	CreatePlaylist(ctx context.Context, actorID, name, description string) (*entity.Playlist, error)
	GetPlaylistByID(ctx context.Context, playlistID string) (*entity.Playlist, error)
	GetUserPlaylists(ctx context.Context, userID string) ([]*entity.Playlist, error)
	ListPlaylists(ctx context.Context, page, pageSize int) ([]*entity.Playlist, int64, error)
	UpdatePlaylist(ctx context.Context, actorID, playlistID string, update PlaylistUpdate) (*entity.Playlist, error)
	DeletePlaylist(ctx context.Context, actorID, playlistID string) (*entity.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error)
	RemoveVideoFromPlaylist(ctx context.Context, actorID, playlistID, videoID string) (*entity.Playlist, error)
}
