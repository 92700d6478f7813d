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

func newLikeFixture(t *testing.T) (*usecase.LikeUsecase, *fakeLikeRepo, *entity.Video, *entity.Comment, *entity.Tweet) {
	t.Helper()
	video := &entity.Video{ID: uuid.NewString(), OwnerID: uuid.NewString(), Title: "intro"}
	comment := &entity.Comment{ID: uuid.NewString(), VideoID: video.ID, OwnerID: uuid.NewString(), Content: "nice"}
	tweet := &entity.Tweet{ID: uuid.NewString(), OwnerID: uuid.NewString(), Content: "hello"}

	likeRepo := newFakeLikeRepo()
	u := usecase.NewLikeUsecase(
		likeRepo,
		newFakeVideoRepo(video),
		newFakeCommentRepo(comment),
		newFakeTweetRepo(tweet),
		nopLogger{},
	)
	return u, likeRepo, video, comment, tweet
}

func TestToggleLike_FirstToggleCreatesLikedRecord(t *testing.T) {
	u, likeRepo, video, _, _ := newLikeFixture(t)
	actorID := uuid.NewString()

	like, err := u.ToggleLike(context.Background(), actorID, entity.TargetKindVideo, video.ID)

	assert.NoError(t, err)
	assert.True(t, like.IsLiked)
	assert.Equal(t, entity.TargetKindVideo, like.TargetKind)
	assert.Equal(t, video.ID, like.TargetID)
	assert.Equal(t, actorID, like.LikedBy)
	assert.Equal(t, 1, likeRepo.count())
}

func TestToggleLike_DoubleToggleReturnsToOriginalState(t *testing.T) {
	u, likeRepo, video, _, _ := newLikeFixture(t)
	actorID := uuid.NewString()

	first, err := u.ToggleLike(context.Background(), actorID, entity.TargetKindVideo, video.ID)
	assert.NoError(t, err)
	assert.True(t, first.IsLiked)

	second, err := u.ToggleLike(context.Background(), actorID, entity.TargetKindVideo, video.ID)
	assert.NoError(t, err)
	assert.False(t, second.IsLiked)

	third, err := u.ToggleLike(context.Background(), actorID, entity.TargetKindVideo, video.ID)
	assert.NoError(t, err)
	assert.True(t, third.IsLiked)

	// Toggling never deletes or duplicates the record.
	assert.Equal(t, 1, likeRepo.count())
}

func TestToggleLike_AllKinds(t *testing.T) {
	u, likeRepo, video, comment, tweet := newLikeFixture(t)
	actorID := uuid.NewString()

	targets := map[entity.TargetKind]string{
		entity.TargetKindVideo:   video.ID,
		entity.TargetKindComment: comment.ID,
		entity.TargetKindTweet:   tweet.ID,
	}
	for kind, targetID := range targets {
		like, err := u.ToggleLike(context.Background(), actorID, kind, targetID)
		assert.NoError(t, err)
		assert.True(t, like.IsLiked)
	}
	// One record per (kind, target, actor) triple.
	assert.Equal(t, 3, likeRepo.count())
}

func TestToggleLike_SameIDDifferentKindsAreIndependent(t *testing.T) {
	// A video and a comment sharing an id value must produce distinct
	// relationship records.
	sharedID := uuid.NewString()
	videoRepo := newFakeVideoRepo(&entity.Video{ID: sharedID, OwnerID: uuid.NewString()})
	commentRepo := newFakeCommentRepo(&entity.Comment{ID: sharedID, OwnerID: uuid.NewString()})
	likeRepo := newFakeLikeRepo()
	u := usecase.NewLikeUsecase(likeRepo, videoRepo, commentRepo, newFakeTweetRepo(), nopLogger{})
	actorID := uuid.NewString()

	_, err := u.ToggleLike(context.Background(), actorID, entity.TargetKindVideo, sharedID)
	assert.NoError(t, err)
	_, err = u.ToggleLike(context.Background(), actorID, entity.TargetKindComment, sharedID)
	assert.NoError(t, err)

	assert.Equal(t, 2, likeRepo.count())
}

func TestToggleLike_UnknownKind(t *testing.T) {
	u, _, video, _, _ := newLikeFixture(t)

	_, err := u.ToggleLike(context.Background(), uuid.NewString(), entity.TargetKind("playlist"), video.ID)

	assert.Equal(t, apperror.EInvalidIdentifier, apperror.ErrorCode(err))
}

func TestToggleLike_InvalidTargetID(t *testing.T) {
	u, likeRepo, _, _, _ := newLikeFixture(t)

	_, err := u.ToggleLike(context.Background(), uuid.NewString(), entity.TargetKindVideo, "not-a-uuid")

	assert.Equal(t, apperror.EInvalidIdentifier, apperror.ErrorCode(err))
	assert.Equal(t, 0, likeRepo.count())
}

func TestToggleLike_TargetNotFound(t *testing.T) {
	u, likeRepo, _, _, _ := newLikeFixture(t)

	_, err := u.ToggleLike(context.Background(), uuid.NewString(), entity.TargetKindVideo, uuid.NewString())

	assert.Equal(t, apperror.ENotFound, apperror.ErrorCode(err))
	assert.Equal(t, 0, likeRepo.count())
}

func TestGetLikedVideos_EmptyIsNotAnError(t *testing.T) {
	u, _, _, _, _ := newLikeFixture(t)

	videos, err := u.GetLikedVideos(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestGetLikedVideos_ExcludesUnliked(t *testing.T) {
	videoA := &entity.Video{ID: uuid.NewString(), OwnerID: uuid.NewString(), Title: "a"}
	videoB := &entity.Video{ID: uuid.NewString(), OwnerID: uuid.NewString(), Title: "b"}
	likeRepo := newFakeLikeRepo()
	u := usecase.NewLikeUsecase(likeRepo, newFakeVideoRepo(videoA, videoB), newFakeCommentRepo(), newFakeTweetRepo(), nopLogger{})
	actorID := uuid.NewString()

	_, err := u.ToggleLike(context.Background(), actorID, entity.TargetKindVideo, videoA.ID)
	assert.NoError(t, err)
	// Like then unlike B; its record survives with IsLiked=false.
	_, err = u.ToggleLike(context.Background(), actorID, entity.TargetKindVideo, videoB.ID)
	assert.NoError(t, err)
	_, err = u.ToggleLike(context.Background(), actorID, entity.TargetKindVideo, videoB.ID)
	assert.NoError(t, err)

	videos, err := u.GetLikedVideos(context.Background(), actorID)
	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, videoA.ID, videos[0].ID)
	assert.Equal(t, 2, likeRepo.count())
}
