package mocks

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

// MockSubscriptionUsecase is a hand-rolled test double for
// ISubscriptionUsecase.
type MockSubscriptionUsecase struct {
	Err        error
	NextState  bool
	Subs       []*entity.Subscription
	Count      int64
	LastActor  string
	LastTarget string
}

var _ usecasecontract.ISubscriptionUsecase = (*MockSubscriptionUsecase)(nil)

func NewMockSubscriptionUsecase() *MockSubscriptionUsecase {
	return &MockSubscriptionUsecase{NextState: true}
}

func (m *MockSubscriptionUsecase) ToggleSubscription(_ context.Context, subscriberID, channelID string) (bool, error) {
	m.LastActor = subscriberID
	m.LastTarget = channelID
	if m.Err != nil {
		return false, m.Err
	}
	return m.NextState, nil
}

func (m *MockSubscriptionUsecase) ListSubscribers(_ context.Context, _ string) ([]*entity.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Subs == nil {
		return []*entity.Subscription{}, nil
	}
	return m.Subs, nil
}

func (m *MockSubscriptionUsecase) ListSubscriptions(_ context.Context, _ string) ([]*entity.Subscription, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Subs == nil {
		return []*entity.Subscription{}, nil
	}
	return m.Subs, nil
}

func (m *MockSubscriptionUsecase) SubscriberCount(_ context.Context, _ string) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Count, nil
}
