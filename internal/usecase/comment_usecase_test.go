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

func newCommentFixture() (usecasecontract.ICommentUsecase, *fakeCommentRepo, *entity.Video) {
	video := &entity.Video{ID: uuid.NewString(), OwnerID: uuid.NewString(), Title: "intro"}
	commentRepo := newFakeCommentRepo()
	u := usecase.NewCommentUsecase(commentRepo, newFakeVideoRepo(video), nopLogger{})
	return u, commentRepo, video
}

func TestAddComment(t *testing.T) {
	u, commentRepo, video := newCommentFixture()
	actorID := uuid.NewString()

	comment, err := u.AddComment(context.Background(), actorID, video.ID, "  great video  ")

	assert.NoError(t, err)
	assert.Equal(t, "great video", comment.Content)
	assert.Equal(t, actorID, comment.OwnerID)
	assert.Len(t, commentRepo.comments, 1)
}

func TestAddComment_EmptyContent(t *testing.T) {
	u, commentRepo, video := newCommentFixture()

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := u.AddComment(context.Background(), uuid.NewString(), video.ID, content)
		assert.Equal(t, apperror.EInvalidContent, apperror.ErrorCode(err))
	}
	assert.Empty(t, commentRepo.comments)
}

func TestAddComment_VideoNotFound(t *testing.T) {
	u, _, _ := newCommentFixture()

	_, err := u.AddComment(context.Background(), uuid.NewString(), uuid.NewString(), "hello")

	assert.Equal(t, apperror.ENotFound, apperror.ErrorCode(err))
}

func TestUpdateComment_OwnerMayEdit(t *testing.T) {
	u, commentRepo, video := newCommentFixture()
	ownerID := uuid.NewString()
	comment := &entity.Comment{ID: uuid.NewString(), VideoID: video.ID, OwnerID: ownerID, Content: "before"}
	commentRepo.comments[comment.ID] = comment

	updated, err := u.UpdateComment(context.Background(), ownerID, comment.ID, "after")

	assert.NoError(t, err)
	assert.Equal(t, "after", updated.Content)
}

func TestUpdateComment_NonOwnerForbidden(t *testing.T) {
	u, commentRepo, video := newCommentFixture()
	comment := &entity.Comment{ID: uuid.NewString(), VideoID: video.ID, OwnerID: uuid.NewString(), Content: "before"}
	commentRepo.comments[comment.ID] = comment

	_, err := u.UpdateComment(context.Background(), uuid.NewString(), comment.ID, "after")

	assert.Equal(t, apperror.EForbidden, apperror.ErrorCode(err))
	// The guard runs before the mutation, so the content is untouched.
	assert.Equal(t, "before", commentRepo.comments[comment.ID].Content)
}

func TestUpdateComment_PopulatedOwnerWinsOverBareID(t *testing.T) {
	u, commentRepo, video := newCommentFixture()
	realOwnerID := uuid.NewString()
	// The fetch populated the owner sub-document; the stale bare id must not
	// decide the outcome.
	comment := &entity.Comment{
		ID:      uuid.NewString(),
		VideoID: video.ID,
		OwnerID: uuid.NewString(),
		Owner:   &entity.UserSummary{ID: realOwnerID, Username: "real"},
		Content: "before",
	}
	commentRepo.comments[comment.ID] = comment

	_, err := u.UpdateComment(context.Background(), realOwnerID, comment.ID, "after")

	assert.NoError(t, err)
}

func TestUpdateComment_MissingOwnerFailsClosed(t *testing.T) {
	u, commentRepo, video := newCommentFixture()
	comment := &entity.Comment{ID: uuid.NewString(), VideoID: video.ID, Content: "before"}
	commentRepo.comments[comment.ID] = comment

	_, err := u.UpdateComment(context.Background(), uuid.NewString(), comment.ID, "after")

	assert.Equal(t, apperror.EOwnerMissing, apperror.ErrorCode(err))
	assert.Equal(t, "before", commentRepo.comments[comment.ID].Content)
}

func TestDeleteComment(t *testing.T) {
	u, commentRepo, video := newCommentFixture()
	ownerID := uuid.NewString()
	comment := &entity.Comment{ID: uuid.NewString(), VideoID: video.ID, OwnerID: ownerID, Content: "bye"}
	commentRepo.comments[comment.ID] = comment

	err := u.DeleteComment(context.Background(), ownerID, comment.ID)

	assert.NoError(t, err)
	assert.Empty(t, commentRepo.comments)
}

func TestDeleteComment_NonOwnerLeavesDocument(t *testing.T) {
	u, commentRepo, video := newCommentFixture()
	comment := &entity.Comment{ID: uuid.NewString(), VideoID: video.ID, OwnerID: uuid.NewString(), Content: "keep"}
	commentRepo.comments[comment.ID] = comment

	err := u.DeleteComment(context.Background(), uuid.NewString(), comment.ID)

	assert.Equal(t, apperror.EForbidden, apperror.ErrorCode(err))
	assert.Len(t, commentRepo.comments, 1)
}

func TestGetVideoComments_EmptyIsNotAnError(t *testing.T) {
	u, _, video := newCommentFixture()

	comments, err := u.GetVideoComments(context.Background(), video.ID)

	assert.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}
