package mocks

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

// MockLikeUsecase is a hand-rolled test double for ILikeUsecase. Set Err to
// force a failure; otherwise ToggleLike reports NextState.
type MockLikeUsecase struct {
	Err       error
	NextState bool
	Videos    []*entity.Video

	ToggleCalls int
	LastKind    entity.TargetKind
	LastTarget  string
	LastActor   string
}

var _ usecasecontract.ILikeUsecase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{NextState: true}
}

func (m *MockLikeUsecase) ToggleLike(_ context.Context, actorID string, kind entity.TargetKind, targetID string) (*entity.Like, error) {
	m.ToggleCalls++
	m.LastKind = kind
	m.LastTarget = targetID
	m.LastActor = actorID
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.Like{
		TargetKind: kind,
		TargetID:   targetID,
		LikedBy:    actorID,
		IsLiked:    m.NextState,
	}, nil
}

func (m *MockLikeUsecase) GetLikedVideos(_ context.Context, _ string) ([]*entity.Video, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Videos == nil {
		return []*entity.Video{}, nil
	}
	return m.Videos, nil
}
