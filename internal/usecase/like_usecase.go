package usecase

import (
	"context"
	"errors"

	"github.com/bereketsh/viewtube/internal/domain/apperror"
	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

// targetChecker verifies that a target of one engageable kind exists.
// It returns ENotFound when it does not.
type targetChecker func(ctx context.Context, targetID string) error

// LikeUsecase implements the engagement toggle across the three engageable
// entity kinds. Dispatch runs over a registry keyed by TargetKind, so adding
// a kind means adding one registry entry, not another copy of the toggle.
type LikeUsecase struct {
	likeRepo  contract.ILikeRepository
	videoRepo contract.IVideoRepository
	logger    usecasecontract.IAppLogger
	targets   map[entity.TargetKind]targetChecker
}

func NewLikeUsecase(
	likeRepo contract.ILikeRepository,
	videoRepo contract.IVideoRepository,
	commentRepo contract.ICommentRepository,
	tweetRepo contract.ITweetRepository,
	logger usecasecontract.IAppLogger,
) *LikeUsecase {
	u := &LikeUsecase{
		likeRepo:  likeRepo,
		videoRepo: videoRepo,
		logger:    logger,
	}
	u.targets = map[entity.TargetKind]targetChecker{
		entity.TargetKindVideo: func(ctx context.Context, id string) error {
			_, err := videoRepo.GetByID(ctx, id)
			return mapNotFound(err, contract.ErrVideoNotFound, "Video")
		},
		entity.TargetKindComment: func(ctx context.Context, id string) error {
			_, err := commentRepo.GetByID(ctx, id)
			return mapNotFound(err, contract.ErrCommentNotFound, "Comment")
		},
		entity.TargetKindTweet: func(ctx context.Context, id string) error {
			_, err := tweetRepo.GetByID(ctx, id)
			return mapNotFound(err, contract.ErrTweetNotFound, "Tweet")
		},
	}
	return u
}

var _ usecasecontract.ILikeUsecase = (*LikeUsecase)(nil)

// ToggleLike validates the target reference and flips the actor's like
// relationship with it.
func (u *LikeUsecase) ToggleLike(ctx context.Context, actorID string, kind entity.TargetKind, targetID string) (*entity.Like, error) {
	check, ok := u.targets[kind]
	if !ok {
		return nil, apperror.Errorf(apperror.EInvalidIdentifier, "Unknown target kind %q", kind)
	}
	if err := validateID(targetID, string(kind)); err != nil {
		return nil, err
	}
	if err := check(ctx, targetID); err != nil {
		return nil, err
	}

	like, err := u.toggle(ctx, actorID, kind, targetID)
	if err != nil {
		return nil, err
	}
	u.logger.Debugf("like toggled: kind=%s target=%s actor=%s is_liked=%t", kind, targetID, actorID, like.IsLiked)
	return like, nil
}

// toggle is the engine proper. The caller has already verified the target
// exists; toggle does not re-check. The unique like document for the triple
// is flipped in place when present and created with IsLiked=true when absent.
// The document is never deleted here.
func (u *LikeUsecase) toggle(ctx context.Context, actorID string, kind entity.TargetKind, targetID string) (*entity.Like, error) {
	like, err := u.likeRepo.GetByTargetAndActor(ctx, kind, targetID, actorID)
	switch {
	case err == nil:
		like.IsLiked = !like.IsLiked
		if err := u.likeRepo.Update(ctx, like); err != nil {
			return nil, apperror.Wrap(err, "Failed to persist like toggle")
		}
		return like, nil
	case errors.Is(err, contract.ErrLikeNotFound):
		like = &entity.Like{
			TargetKind: kind,
			TargetID:   targetID,
			LikedBy:    actorID,
			IsLiked:    true,
		}
		if err := u.likeRepo.Create(ctx, like); err != nil {
			return nil, apperror.Wrap(err, "Failed to create like record")
		}
		return like, nil
	default:
		return nil, apperror.Wrap(err, "Failed to look up like record")
	}
}

// GetLikedVideos returns all videos the actor currently likes. A user with no
// liked videos gets an empty slice, not an error.
func (u *LikeUsecase) GetLikedVideos(ctx context.Context, actorID string) ([]*entity.Video, error) {
	ids, err := u.likeRepo.ListLikedVideoIDs(ctx, actorID)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to list liked videos")
	}
	if len(ids) == 0 {
		return []*entity.Video{}, nil
	}
	videos, err := u.videoRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Wrap(err, "Failed to fetch liked videos")
	}
	return videos, nil
}

// mapNotFound translates a repository sentinel into the typed taxonomy,
// wrapping anything else as a store failure.
func mapNotFound(err, sentinel error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sentinel) {
		return apperror.Errorf(apperror.ENotFound, "%s not found", what)
	}
	return apperror.Wrap(err, "Failed to fetch %s", what)
}
