package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bereketsh/viewtube/internal/handler/http/dto"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type PlaylistHandler struct {
	playlistUsecase usecasecontract.IPlaylistUsecase
}

func NewPlaylistHandler(playlistUsecase usecasecontract.IPlaylistUsecase) *PlaylistHandler {
	return &PlaylistHandler{playlistUsecase: playlistUsecase}
}

// CreatePlaylist creates an empty playlist owned by the caller.
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePlaylistRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	playlist, err := h.playlistUsecase.CreatePlaylist(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, playlist)
}

// GetPlaylist returns a playlist with its videos populated.
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistUsecase.GetPlaylistByID(c.Request.Context(), c.Param("playlistID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

// GetUserPlaylists lists all playlists owned by a user.
func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	playlists, err := h.playlistUsecase.GetUserPlaylists(c.Request.Context(), c.Param("userID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlists)
}

// ListPlaylists pages through all playlists.
func (h *PlaylistHandler) ListPlaylists(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	playlists, total, err := h.playlistUsecase.ListPlaylists(c.Request.Context(), page, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"playlists": playlists, "total": total})
}

// UpdatePlaylist changes the playlist name or description. Owner only.
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePlaylistRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	playlist, err := h.playlistUsecase.UpdatePlaylist(c.Request.Context(), userID, c.Param("playlistID"), usecasecontract.PlaylistUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

// DeletePlaylist removes the playlist. Owner only.
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if _, err := h.playlistUsecase.DeletePlaylist(c.Request.Context(), userID, c.Param("playlistID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Playlist deleted successfully")
}

// AddVideoToPlaylist appends a video to the playlist. Owner only.
func (h *PlaylistHandler) AddVideoToPlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	playlist, err := h.playlistUsecase.AddVideoToPlaylist(c.Request.Context(), userID, c.Param("playlistID"), c.Param("videoID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

// RemoveVideoFromPlaylist removes a video from the playlist. Owner only.
func (h *PlaylistHandler) RemoveVideoFromPlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	playlist, err := h.playlistUsecase.RemoveVideoFromPlaylist(c.Request.Context(), userID, c.Param("playlistID"), c.Param("videoID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}
