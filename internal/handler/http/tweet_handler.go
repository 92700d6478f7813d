package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsh/viewtube/internal/handler/http/dto"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type TweetHandler struct {
	tweetUsecase usecasecontract.ITweetUsecase
}

func NewTweetHandler(tweetUsecase usecasecontract.ITweetUsecase) *TweetHandler {
	return &TweetHandler{tweetUsecase: tweetUsecase}
}

// CreateTweet posts a new tweet by the caller.
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	tweet, err := h.tweetUsecase.CreateTweet(c.Request.Context(), userID, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, tweet)
}

// GetUserTweets lists a user's tweets.
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	tweets, err := h.tweetUsecase.GetUserTweets(c.Request.Context(), c.Param("userID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tweets)
}

// UpdateTweet replaces the tweet text. Only the author may do this.
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.ContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	tweet, err := h.tweetUsecase.UpdateTweet(c.Request.Context(), userID, c.Param("tweetID"), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tweet)
}

// DeleteTweet removes the tweet. Only the author may do this.
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.tweetUsecase.DeleteTweet(c.Request.Context(), userID, c.Param("tweetID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Tweet deleted successfully")
}
