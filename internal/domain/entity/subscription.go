package entity

import (
	"time"
)

// Subscription records a subscriber following a channel. Existence of the
// document is the subscribed state: subscribing creates it, unsubscribing
// hard-deletes it. This is deliberately asymmetric with Like, which keeps its
// document and flips a flag.
type Subscription struct {
	ID           string       `bson:"_id,omitempty" json:"id"`
	ChannelID    string       `bson:"channel_id" json:"channel_id"`
	SubscriberID string       `bson:"subscriber_id" json:"subscriber_id"`
	Channel      *UserSummary `bson:"channel,omitempty" json:"channel,omitempty"`
	Subscriber   *UserSummary `bson:"subscriber,omitempty" json:"subscriber,omitempty"`
	CreatedAt    time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `bson:"updated_at" json:"updated_at"`
}
