package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type tweetUsecase struct {
	tweetRepo contract.ITweetRepository
	userRepo  contract.IUserRepository
	logger    usecasecontract.IAppLogger
}

func NewTweetUsecase(
	tweetRepo contract.ITweetRepository,
	userRepo contract.IUserRepository,
	logger usecasecontract.IAppLogger,
) usecasecontract.ITweetUsecase {
	return &tweetUsecase{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (u *tweetUsecase) CreateTweet(ctx context.Context, actorID, content string) (*entity.Tweet, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if _, err := u.userRepo.GetUserByID(ctx, actorID); err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, apperror.Errorf(apperror.ENotFound, "User not found")
		}
		return nil, apperror.Wrap(err, "Failed to fetch user")
	}

	tweet := &entity.Tweet{
		OwnerID: actorID,
		Content: strings.TrimSpace(content),
	}
	if err := u.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, apperror.Wrap(err, "Failed to create tweet")
	}
	return tweet, nil
}

// GetUserTweets returns all tweets by a user, newest first. A user with no
// tweets gets an empty slice.
func (u *tweetUsecase) GetUserTweets(ctx context.Context, userID string) ([]*entity.Tweet, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}
	tweets, err := u.tweetRepo.ListByOwnerID(ctx, userID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to list tweets")
	}
	if tweets == nil {
		tweets = []*entity.Tweet{}
	}
	return tweets, nil
}

// UpdateTweet edits the tweet body. Only the owner may edit.
func (u *tweetUsecase) UpdateTweet(ctx context.Context, actorID, tweetID, content string) (*entity.Tweet, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validateID(tweetID, "tweet"); err != nil {
		return nil, err
	}
	tweet, err := u.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, mapNotFound(err, contract.ErrTweetNotFound, "Tweet")
	}
	if err := authorizeOwner(actorID, tweet); err != nil {
		return nil, err
	}

	tweet.Content = strings.TrimSpace(content)
	if err := u.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, apperror.Wrap(err, "Failed to update tweet")
	}
	return tweet, nil
}

// DeleteTweet removes a tweet after the ownership check passes.
func (u *tweetUsecase) DeleteTweet(ctx context.Context, actorID, tweetID string) error {
	if err := validateID(tweetID, "tweet"); err != nil {
		return err
	}
	tweet, err := u.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return mapNotFound(err, contract.ErrTweetNotFound, "Tweet")
	}
	if err := authorizeOwner(actorID, tweet); err != nil {
		return err
	}

	if err := u.tweetRepo.Delete(ctx, tweetID); err != nil {
		if errors.Is(err, contract.ErrTweetNotFound) {
			return apperror.Errorf(apperror.ENotFound, "Tweet not found")
		}
		return apperror.Wrap(err, "Failed to delete tweet")
	}
	return nil
}
