package entity

import (
	"fmt"
	"time"
)

// TargetKind tags the entity kind a like points at. Dispatching on a tagged
// variant instead of raw collection field names keeps a typo from silently
// creating a new relationship class.
type TargetKind string

const (
	TargetKindVideo   TargetKind = "video"
	TargetKindComment TargetKind = "comment"
	TargetKindTweet   TargetKind = "tweet"
)

// ParseTargetKind converts a wire string into a TargetKind.
func ParseTargetKind(s string) (TargetKind, error) {
	switch TargetKind(s) {
	case TargetKindVideo, TargetKindComment, TargetKindTweet:
		return TargetKind(s), nil
	}
	return "", fmt.Errorf("unknown target kind %q", s)
}

// Like records a user's like relationship with a single target. At most one
// document exists per (target_kind, target_id, liked_by) triple; toggling
// flips IsLiked in place and the document is never deleted, so "never liked"
// (no document) stays distinguishable from "liked then unliked".
type Like struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	TargetKind TargetKind `bson:"target_kind" json:"target_kind"`
	TargetID   string     `bson:"target_id" json:"target_id"`
	LikedBy    string     `bson:"liked_by" json:"liked_by"`
	IsLiked    bool       `bson:"is_liked" json:"is_liked"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}
