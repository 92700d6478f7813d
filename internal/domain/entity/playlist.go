package entity

import (
	"time"
)

// Playlist is an ordered sequence of video references owned by one user.
// Duplicate references are permitted; no uniqueness is enforced.
type Playlist struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	OwnerID     string       `bson:"owner_id" json:"owner_id"`
	Owner       *UserSummary `bson:"owner,omitempty" json:"owner,omitempty"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description" json:"description"`
	VideoIDs    []string     `bson:"video_ids" json:"video_ids"`
	Videos      []*Video     `bson:"videos,omitempty" json:"videos,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

func (p *Playlist) OwnerIdentifier() string { return p.OwnerID }
func (p *Playlist) OwnerDocument() *UserSummary { return p.Owner }
