package contract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

type ISubscriptionRepository interface {
	// Get retrieves the subscription document for the (channel, subscriber)
	// pair, if one exists.
	Get(ctx context.Context, channelID, subscriberID string) (*entity.Subscription, error)
	Create(ctx context.Context, sub *entity.Subscription) error
	// Delete hard-deletes the document for the pair. Existence of the
	// document is the subscribed state, so there is no flag to flip.
	Delete(ctx context.Context, channelID, subscriberID string) error
	// ListByChannel returns all subscriptions to a channel with the
	// subscriber profile populated.
	ListByChannel(ctx context.Context, channelID string) ([]*entity.Subscription, error)
	// ListBySubscriber returns all subscriptions held by a user with the
	// channel profile populated.
	ListBySubscriber(ctx context.Context, subscriberID string) ([]*entity.Subscription, error)
	CountByChannel(ctx context.Context, channelID string) (int64, error)
}
