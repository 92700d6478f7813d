package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsh/viewtube/internal/handler/http/dto"
	"github.com/bereketsh/viewtube/internal/infrastructure/metrics"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type SubscriptionHandler struct {
	subscriptionUsecase usecasecontract.ISubscriptionUsecase
}

func NewSubscriptionHandler(subscriptionUsecase usecasecontract.ISubscriptionUsecase) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

// ToggleSubscription subscribes or unsubscribes the caller to a channel.
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	subscribed, err := h.subscriptionUsecase.ToggleSubscription(c.Request.Context(), userID, c.Param("channelID"))
	if err != nil {
		RespondError(c, err)
		return
	}

	state := "unsubscribed"
	if subscribed {
		state = "subscribed"
	}
	metrics.SubscriptionTogglesTotal.WithLabelValues(state).Inc()
	SuccessHandler(c, http.StatusOK, dto.ToggleSubscriptionResponse{Subscribed: subscribed})
}

// GetChannelSubscribers lists the subscribers of a channel.
func (h *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	subs, err := h.subscriptionUsecase.ListSubscribers(c.Request.Context(), c.Param("channelID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, subs)
}

// GetSubscribedChannels lists the channels the caller is subscribed to.
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	subs, err := h.subscriptionUsecase.ListSubscriptions(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, subs)
}

// GetSubscriberCount reports how many users are subscribed to a channel.
func (h *SubscriptionHandler) GetSubscriberCount(c *gin.Context) {
	count, err := h.subscriptionUsecase.SubscriberCount(c.Request.Context(), c.Param("channelID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"subscriber_count": count})
}
