package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	"github.com/bereketsh/viewtube/internal/usecase"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

func newTweetFixture() (usecasecontract.ITweetUsecase, *fakeTweetRepo, *entity.User) {
	author := &entity.User{ID: uuid.NewString(), Username: "author", Email: "a@example.com"}
	tweetRepo := newFakeTweetRepo()
	u := usecase.NewTweetUsecase(tweetRepo, newFakeUserRepo(author), nopLogger{})
	return u, tweetRepo, author
}

func TestCreateTweet(t *testing.T) {
	u, tweetRepo, author := newTweetFixture()

	tweet, err := u.CreateTweet(context.Background(), author.ID, " hello world ")

	assert.NoError(t, err)
	assert.Equal(t, "hello world", tweet.Content)
	assert.Equal(t, author.ID, tweet.OwnerID)
	assert.Len(t, tweetRepo.tweets, 1)
}

func TestCreateTweet_EmptyContent(t *testing.T) {
	u, _, author := newTweetFixture()

	_, err := u.CreateTweet(context.Background(), author.ID, "   ")

	assert.Equal(t, apperror.EInvalidContent, apperror.ErrorCode(err))
}

func TestCreateTweet_UnknownAuthor(t *testing.T) {
	u, _, _ := newTweetFixture()

	_, err := u.CreateTweet(context.Background(), uuid.NewString(), "hello")

	assert.Equal(t, apperror.ENotFound, apperror.ErrorCode(err))
}

func TestUpdateTweet_NonOwnerForbidden(t *testing.T) {
	u, tweetRepo, _ := newTweetFixture()
	tweet := &entity.Tweet{ID: uuid.NewString(), OwnerID: uuid.NewString(), Content: "before"}
	tweetRepo.tweets[tweet.ID] = tweet

	_, err := u.UpdateTweet(context.Background(), uuid.NewString(), tweet.ID, "after")

	assert.Equal(t, apperror.EForbidden, apperror.ErrorCode(err))
	assert.Equal(t, "before", tweetRepo.tweets[tweet.ID].Content)
}

func TestDeleteTweet(t *testing.T) {
	u, tweetRepo, author := newTweetFixture()
	tweet := &entity.Tweet{ID: uuid.NewString(), OwnerID: author.ID, Content: "bye"}
	tweetRepo.tweets[tweet.ID] = tweet

	err := u.DeleteTweet(context.Background(), author.ID, tweet.ID)

	assert.NoError(t, err)
	assert.Empty(t, tweetRepo.tweets)
}

func TestGetUserTweets_EmptyIsNotAnError(t *testing.T) {
	u, _, author := newTweetFixture()

	tweets, err := u.GetUserTweets(context.Background(), author.ID)

	assert.NoError(t, err)
	assert.NotNil(t, tweets)
	assert.Empty(t, tweets)
}
