package usecase

import (
	"context"
	"errors"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

// SubscriptionUsecase manages the channel/subscriber relationship. Unlike a
// like, a subscription has no flag: the document's existence is the state, so
// the toggle creates on subscribe and hard-deletes on unsubscribe.
type SubscriptionUsecase struct {
	subRepo  contract.ISubscriptionRepository
	userRepo contract.IUserRepository
	cache    contract.IVideoCache
	logger   usecasecontract.IAppLogger
}

func NewSubscriptionUsecase(
	subRepo contract.ISubscriptionRepository,
	userRepo contract.IUserRepository,
	logger usecasecontract.IAppLogger,
) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		subRepo:  subRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

var _ usecasecontract.ISubscriptionUsecase = (*SubscriptionUsecase)(nil)

// SetCache injects an optional cache for subscriber counts.
func (u *SubscriptionUsecase) SetCache(cache contract.IVideoCache) {
	u.cache = cache
}

// ToggleSubscription subscribes or unsubscribes the subscriber to the channel.
// The subscriber is the authenticated actor and assumed valid; the channel is
// checked for existence.
func (u *SubscriptionUsecase) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return false, err
	}
	if err := validateID(subscriberID, "subscriber"); err != nil {
		return false, err
	}
	if _, err := u.userRepo.GetUserByID(ctx, channelID); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return false, apperror.Errorf(apperror.ENotFound, "Channel not found")
		}
		return false, apperror.Wrap(err, "Failed to fetch channel")
	}

	subscribed, err := u.toggle(ctx, subscriberID, channelID)
	if err != nil {
		return false, err
	}
	if u.cache != nil {
		_ = u.cache.InvalidateSubscriberCount(ctx, channelID)
	}
	u.logger.Debugf("subscription toggled: channel=%s subscriber=%s subscribed=%t", channelID, subscriberID, subscribed)
	return subscribed, nil
}

func (u *SubscriptionUsecase) toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	_, err := u.subRepo.Get(ctx, channelID, subscriberID)
	switch {
	case err == nil:
		if err := u.subRepo.Delete(ctx, channelID, subscriberID); err != nil {
			return false, apperror.Wrap(err, "Failed to unsubscribe")
		}
		return false, nil
	case errors.Is(err, contract.ErrSubscriptionNotFound):
		sub := &entity.Subscription{
			ChannelID:    channelID,
			SubscriberID: subscriberID,
		}
		if err := u.subRepo.Create(ctx, sub); err != nil {
			return false, apperror.Wrap(err, "Failed to subscribe")
		}
		return true, nil
	default:
		return false, apperror.Wrap(err, "Failed to look up subscription")
	}
}

// ListSubscribers returns everyone subscribed to a channel, with the
// subscriber profile populated. A channel with no subscribers gets an empty
// slice, not an error.
func (u *SubscriptionUsecase) ListSubscribers(ctx context.Context, channelID string) ([]*entity.Subscription, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return nil, err
	}
	subs, err := u.subRepo.ListByChannel(ctx, channelID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to list subscribers")
	}
	if subs == nil {
		subs = []*entity.Subscription{}
	}
	return subs, nil
}

// ListSubscriptions returns every channel a user is subscribed to, with the
// channel profile populated.
func (u *SubscriptionUsecase) ListSubscriptions(ctx context.Context, subscriberID string) ([]*entity.Subscription, error) {
	if err := validateID(subscriberID, "subscriber"); err != nil {
		return nil, err
	}
	subs, err := u.subRepo.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to list subscriptions")
	}
	if subs == nil {
		subs = []*entity.Subscription{}
	}
	return subs, nil
}

// SubscriberCount reports how many subscribers a channel has, consulting the
// cache when one is wired.
func (u *SubscriptionUsecase) SubscriberCount(ctx context.Context, channelID string) (int64, error) {
	if err := validateID(channelID, "channel"); err != nil {
		return 0, err
	}
	if u.cache != nil {
		if count, ok, err := u.cache.GetSubscriberCount(ctx, channelID); err == nil && ok {
			return count, nil
		}
	}
	count, err := u.subRepo.CountByChannel(ctx, channelID)
	if err != nil {
		return 0, apperror.Wrap(err, "Failed to count subscribers")
	}
	if u.cache != nil {
		_ = u.cache.SetSubscriberCount(ctx, channelID, count)
	}
	return count, nil
}
