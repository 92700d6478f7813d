package entity

import (
	"time"
)

// Tweet is a short free-standing text post by a user.
type Tweet struct {
	ID        string       `bson:"_id,omitempty" json:"id"`
	OwnerID   string       `bson:"owner_id" json:"owner_id"`
	Owner     *UserSummary `bson:"owner,omitempty" json:"owner,omitempty"`
	Content   string       `bson:"content" json:"content"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at"`
}

func (t *Tweet) OwnerIdentifier() string { return t.OwnerID }
func (t *Tweet) OwnerDocument() *UserSummary { return t.Owner }
