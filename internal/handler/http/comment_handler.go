package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsh/viewtube/internal/handler/http/dto"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type CommentHandler struct {
	commentUsecase usecasecontract.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecasecontract.ICommentUsecase) *CommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

// AddComment attaches a new comment to a video.
func (h *CommentHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.AddComment(c.Request.Context(), userID, c.Param("videoID"), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}

// GetVideoComments lists the comments on a video.
func (h *CommentHandler) GetVideoComments(c *gin.Context) {
	comments, err := h.commentUsecase.GetVideoComments(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comments)
}

// UpdateComment replaces the comment text. Only the author may do this.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.UpdateComment(c.Request.Context(), userID, c.Param("commentID"), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comment)
}

// DeleteComment removes the comment. Only the author may do this.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.commentUsecase.DeleteComment(c.Request.Context(), userID, c.Param("commentID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted successfully")
}
