package entity

import (
	"time"
)

// Comment is a user comment on a video.
type Comment struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	VideoID   string       `bson:"video_id" json:"video_id"`
	OwnerID   string       `bson:"owner_id" json:"owner_id"`
	Owner     *UserSummary `bson:"owner,omitempty" json:"owner,omitempty"`
	Content   string       `bson:"content" json:"content"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
}

func (c *Comment) OwnerIdentifier() string { return c.OwnerID }
func (c *Comment) OwnerDocument() *UserSummary { return c.Owner }
