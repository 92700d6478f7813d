package entity

import (
	"time"
)

// User represents a registered user in the system. Every user doubles as a
// channel that other users can subscribe to.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FullName     string    `bson:"full_name" json:"full_name"`
	AvatarURL    *string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserSummary is the profile projection embedded when an owner, subscriber or
// channel reference is populated by a lookup.
type UserSummary struct {
	ID        string  `bson:"_id" json:"id"`
	Username  string  `bson:"username" json:"username"`
	FullName  string  `bson:"full_name" json:"full_name"`
	AvatarURL *string `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}

// Summary projects a full user down to the fields exposed alongside other
// resources.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}
