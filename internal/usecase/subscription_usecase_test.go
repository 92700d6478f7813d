package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	"github.com/bereketsh/viewtube/internal/usecase"
)

func newSubscriptionFixture() (*usecase.SubscriptionUsecase, *fakeSubscriptionRepo, *entity.User) {
	channel := &entity.User{ID: uuid.NewString(), Username: "channel", Email: "ch@example.com"}
	subRepo := newFakeSubscriptionRepo()
	u := usecase.NewSubscriptionUsecase(subRepo, newFakeUserRepo(channel), nopLogger{})
	return u, subRepo, channel
}

func TestToggleSubscription_ExistenceAlternates(t *testing.T) {
	u, subRepo, channel := newSubscriptionFixture()
	subscriberID := uuid.NewString()

	subscribed, err := u.ToggleSubscription(context.Background(), subscriberID, channel.ID)
	assert.NoError(t, err)
	assert.True(t, subscribed)
	assert.Len(t, subRepo.subs, 1)

	// Unsubscribing hard-deletes the document; there is no flag.
	subscribed, err = u.ToggleSubscription(context.Background(), subscriberID, channel.ID)
	assert.NoError(t, err)
	assert.False(t, subscribed)
	assert.Empty(t, subRepo.subs)

	subscribed, err = u.ToggleSubscription(context.Background(), subscriberID, channel.ID)
	assert.NoError(t, err)
	assert.True(t, subscribed)
	assert.Len(t, subRepo.subs, 1)
}

func TestToggleSubscription_ChannelNotFound(t *testing.T) {
	u, subRepo, _ := newSubscriptionFixture()

	_, err := u.ToggleSubscription(context.Background(), uuid.NewString(), uuid.NewString())

	assert.Equal(t, apperror.ENotFound, apperror.ErrorCode(err))
	assert.Empty(t, subRepo.subs)
}

func TestToggleSubscription_InvalidChannelID(t *testing.T) {
	u, _, _ := newSubscriptionFixture()

	_, err := u.ToggleSubscription(context.Background(), uuid.NewString(), "nope")

	assert.Equal(t, apperror.EInvalidIdentifier, apperror.ErrorCode(err))
}

func TestToggleSubscription_SelfSubscriptionPermitted(t *testing.T) {
	u, subRepo, channel := newSubscriptionFixture()

	subscribed, err := u.ToggleSubscription(context.Background(), channel.ID, channel.ID)

	assert.NoError(t, err)
	assert.True(t, subscribed)
	assert.Len(t, subRepo.subs, 1)
}

func TestListSubscribers_EmptyIsNotAnError(t *testing.T) {
	u, _, channel := newSubscriptionFixture()

	subs, err := u.ListSubscribers(context.Background(), channel.ID)

	assert.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)
}

func TestSubscriberCount(t *testing.T) {
	u, _, channel := newSubscriptionFixture()

	for i := 0; i < 3; i++ {
		_, err := u.ToggleSubscription(context.Background(), uuid.NewString(), channel.ID)
		assert.NoError(t, err)
	}

	count, err := u.SubscriberCount(context.Background(), channel.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
