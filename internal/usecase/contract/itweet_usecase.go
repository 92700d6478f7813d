package usecasecontract

import (
	"context"

	"github.com/bereketsh/viewtube/internal/domain/entity"
)

type ITweetUsecase interface {
	CreateTweet(ctx context.Context, actorID, content string) (*entity.Tweet, error)
	GetUserTweets(ctx context.Context, userID string) ([]*entity.Tweet, error)
	UpdateTweet(ctx context.Context, actorID, tweetID, content string) (*entity.Tweet, error)
	DeleteTweet(ctx context.Context, actorID, tweetID string) error
}
