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

type commentUsecase struct {
	commentRepo contract.ICommentRepository
	videoRepo   contract.IVideoRepository
	logger      usecasecontract.IAppLogger
}

func NewCommentUsecase(
	commentRepo contract.ICommentRepository,
	videoRepo contract.IVideoRepository,
	logger usecasecontract.IAppLogger,
) usecasecontract.ICommentUsecase {
	return &commentUsecase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		logger:      logger,
	}
}

// AddComment creates a comment on an existing video.
func (u *commentUsecase) AddComment(ctx context.Context, actorID, videoID, content string) (*entity.Comment, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, mapNotFound(err, contract.ErrVideoNotFound, "Video")
	}

	comment := &entity.Comment{
		VideoID: videoID,
		OwnerID: actorID,
		Content: strings.TrimSpace(content),
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, apperror.Wrap(err, "Failed to create comment")
	}
	return comment, nil
}

// GetVideoComments returns all comments on a video with owner profiles
// populated.
func (u *commentUsecase) GetVideoComments(ctx context.Context, videoID string) ([]*entity.Comment, error) {
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, mapNotFound(err, contract.ErrVideoNotFound, "Video")
	}
	comments, err := u.commentRepo.ListByVideoID(ctx, videoID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to list comments")
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}
	return comments, nil
}

// UpdateComment edits the comment body. Only the owner may edit.
func (u *commentUsecase) UpdateComment(ctx context.Context, actorID, commentID, content string) (*entity.Comment, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validateID(commentID, "comment"); err != nil {
		return nil, err
	}
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, mapNotFound(err, contract.ErrCommentNotFound, "Comment")
	}
	if err := authorizeOwner(actorID, comment); err != nil {
		return nil, err
	}

	comment.Content = strings.TrimSpace(content)
	if err := u.commentRepo.Update(ctx, comment); err != nil {
		return nil, apperror.Wrap(err, "Failed to update comment")
	}
	return comment, nil
}

// DeleteComment removes a comment. The ownership check runs before the
// delete, so an unauthorized call leaves the document untouched.
func (u *commentUsecase) DeleteComment(ctx context.Context, actorID, commentID string) error {
	if err := validateID(commentID, "comment"); err != nil {
		return err
	}
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return mapNotFound(err, contract.ErrCommentNotFound, "Comment")
	}
	if err := authorizeOwner(actorID, comment); err != nil {
		return err
	}

	if err := u.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, contract.ErrCommentNotFound) {
			return apperror.Errorf(apperror.ENotFound, "Comment not found")
		}
		return apperror.Wrap(err, "Failed to delete comment")
	}
	return nil
}
