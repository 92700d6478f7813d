package usecasecontract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

type ISubscriptionUsecase interface {
	// ToggleSubscription subscribes or unsubscribes the subscriber to the
	// channel and reports the resulting state.
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (subscribed bool, err error)
	ListSubscribers(ctx context.Context, channelID string) ([]*entity.Subscription, error)
	ListSubscriptions(ctx context.Context, subscriberID string) ([]*entity.Subscription, error)
	SubscriberCount(ctx context.Context, channelID string) (int64, error)
}
