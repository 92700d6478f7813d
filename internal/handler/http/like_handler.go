package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsh/viewtube/internal/domain/entity"
	"github.com/bereketsh/viewtube/internal/infrastructure/metrics"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type LikeHandler struct {
	likeUsecase usecasecontract.ILikeUsecase
}

func NewLikeHandler(likeUsecase usecasecontract.ILikeUsecase) *LikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

// ToggleVideoLike flips the caller's like on a video.
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, entity.TargetKindVideo, c.Param("videoID"))
}

// ToggleCommentLike flips the caller's like on a comment.
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, entity.TargetKindComment, c.Param("commentID"))
}

// ToggleTweetLike flips the caller's like on a tweet.
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, entity.TargetKindTweet, c.Param("tweetID"))
}

func (h *LikeHandler) toggle(c *gin.Context, kind entity.TargetKind, targetID string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	like, err := h.likeUsecase.ToggleLike(c.Request.Context(), userID, kind, targetID)
	if err != nil {
		RespondError(c, err)
		return
	}

	state := "unliked"
	message := "Unliked successfully"
	if like.IsLiked {
		state = "liked"
		message = "Liked successfully"
	}
	metrics.EngagementTogglesTotal.WithLabelValues(string(kind), state).Inc()
	MessageHandler(c, http.StatusOK, message)
}

// GetLikedVideos lists every video the caller currently likes.
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	videos, err := h.likeUsecase.GetLikedVideos(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, videos)
}
