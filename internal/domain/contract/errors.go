package contract

import "errors"

// Sentinel errors repositories return when a document cannot be found.
// Usecases translate these into the typed application error taxonomy.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrVideoNotFound        = errors.New("video not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrTweetNotFound        = errors.New("tweet not found")
	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrLikeNotFound         = errors.New("like record not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
