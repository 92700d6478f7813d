package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	handler "github.com/bereketsh/viewtube/internal/handler/http"
	"github.com/bereketsh/viewtube/internal/handler/http/mocks"
)

func setupSubscriptionRouter(h *handler.SubscriptionHandler, userID string) *gin.Engine {
	r := gin.New()
	g := r.Group("/", authAs(userID))
	g.POST("/subscriptions/channels/:channelID", h.ToggleSubscription)
	g.GET("/subscriptions/channels/:channelID/subscribers", h.GetChannelSubscribers)
	g.GET("/subscriptions", h.GetSubscribedChannels)
	r.GET("/subscriptions/channels/:channelID/count", h.GetSubscriberCount)
	return r
}

func TestToggleSubscription_Subscribed(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	userID := uuid.NewString()
	channelID := uuid.NewString()
	r := setupSubscriptionRouter(handler.NewSubscriptionHandler(mockUsecase), userID)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/channels/"+channelID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subscribed":true}`, w.Body.String())
	assert.Equal(t, userID, mockUsecase.LastActor)
	assert.Equal(t, channelID, mockUsecase.LastTarget)
}

func TestToggleSubscription_Unsubscribed(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	mockUsecase.NextState = false
	r := setupSubscriptionRouter(handler.NewSubscriptionHandler(mockUsecase), uuid.NewString())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/channels/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subscribed":false}`, w.Body.String())
}

func TestToggleSubscription_ChannelNotFound(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	mockUsecase.Err = apperror.Errorf(apperror.ENotFound, "Channel not found")
	r := setupSubscriptionRouter(handler.NewSubscriptionHandler(mockUsecase), uuid.NewString())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subscriptions/channels/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Channel not found")
}

func TestGetSubscriberCount(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	mockUsecase.Count = 42
	r := setupSubscriptionRouter(handler.NewSubscriptionHandler(mockUsecase), uuid.NewString())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions/channels/"+uuid.NewString()+"/count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"subscriber_count":42}`, w.Body.String())
}

func TestGetSubscribedChannels_Empty(t *testing.T) {
	mockUsecase := mocks.NewMockSubscriptionUsecase()
	r := setupSubscriptionRouter(handler.NewSubscriptionHandler(mockUsecase), uuid.NewString())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/subscriptions", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
