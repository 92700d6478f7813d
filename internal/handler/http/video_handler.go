package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/handler/http/dto"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type VideoHandler struct {
	videoUsecase usecasecontract.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecasecontract.IVideoUsecase) *VideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// PublishVideo registers an uploaded video under the caller's account.
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.PublishVideoRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	video, err := h.videoUsecase.PublishVideo(c.Request.Context(), userID, usecasecontract.PublishVideoInput{
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   req.VideoFile,
		Thumbnail:   req.Thumbnail,
		Duration:    req.Duration,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, video)
}

// GetVideo returns a single video with its owner populated.
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUsecase.GetVideoByID(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

// ListVideos pages through published videos, optionally filtered by owner
// or a title search and ordered by an explicit sort key.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	direction := contract.SortDescending
	if c.DefaultQuery("sortType", "desc") == "asc" {
		direction = contract.SortAscending
	}

	videos, total, err := h.videoUsecase.ListVideos(c.Request.Context(), contract.VideoListOptions{
		OwnerID:       c.Query("userId"),
		Query:         c.Query("query"),
		PublishedOnly: true,
		SortBy:        contract.VideoSortField(c.DefaultQuery("sortBy", string(contract.VideoSortByCreatedAt))),
		Direction:     direction,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"videos": videos, "total": total})
}

// UpdateVideo changes the video metadata. Owner only.
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateVideoRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	video, err := h.videoUsecase.UpdateVideo(c.Request.Context(), userID, c.Param("videoID"), usecasecontract.VideoUpdate{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

// DeleteVideo removes the video. Owner only.
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.videoUsecase.DeleteVideo(c.Request.Context(), userID, c.Param("videoID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Video deleted successfully")
}

// TogglePublishStatus flips the video between published and hidden. Owner
// only.
func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	video, err := h.videoUsecase.TogglePublishStatus(c.Request.Context(), userID, c.Param("videoID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}
