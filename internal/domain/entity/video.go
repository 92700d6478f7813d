package entity

import (
	"time"
)

// Video represents a published video and its stored media URLs. Upload to the
// external media store happens before the record is created, so only the
// resulting URLs live here.
type Video struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	OwnerID     string       `bson:"owner_id" json:"owner_id"`
	Owner       *UserSummary `bson:"owner,omitempty" json:"owner,omitempty"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	VideoFile   string       `bson:"video_file" json:"video_file"`
	Thumbnail   string       `bson:"thumbnail" json:"thumbnail"`
	Duration    float64      `bson:"duration" json:"duration"`
	Views       int64        `bson:"views" json:"views"`
	IsPublished bool         `bson:"is_published" json:"is_published"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

func (v *Video) OwnerIdentifier() string { return v.OwnerID }
func (v *Video) OwnerDocument() *UserSummary { return v.Owner }
