package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	"github.com/bereketsh/viewtube/internal/infrastructure/uuidgen"
)

// SubscriptionRepository is the MongoDB implementation of
// contract.ISubscriptionRepository. Existence of a document is the subscribed
// state: unsubscribe hard-deletes rather than flipping a flag.
type SubscriptionRepository struct {
	collection *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{
		collection: db.Collection("subscriptions"),
	}
}

var _ contract.ISubscriptionRepository = (*SubscriptionRepository)(nil)

// EnsureIndexes creates the unique pair index. Safe to call on startup.
func (r *SubscriptionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "channel_id", Value: 1},
			{Key: "subscriber_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription index: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Get(ctx context.Context, channelID, subscriberID string) (*entity.Subscription, error) {
	filter := bson.M{"channel_id": channelID, "subscriber_id": subscriberID}

	var sub entity.Subscription
	err := r.collection.FindOne(ctx, filter).Decode(&sub)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	sub.ID = uuidgen.NewGenerator().NewUUID()
	sub.CreatedAt = time.Now()
	sub.UpdatedAt = sub.CreatedAt

	if _, err := r.collection.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, channelID, subscriberID string) error {
	filter := bson.M{"channel_id": channelID, "subscriber_id": subscriberID}

	res, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrSubscriptionNotFound
	}
	return nil
}

// ListByChannel returns all subscriptions to a channel with the subscriber
// profile populated from the users collection.
func (r *SubscriptionRepository) ListByChannel(ctx context.Context, channelID string) ([]*entity.Subscription, error) {
	return r.listPopulated(ctx, bson.M{"channel_id": channelID}, "subscriber_id", "subscriber")
}

// ListBySubscriber returns all subscriptions held by a user with the channel
// profile populated.
func (r *SubscriptionRepository) ListBySubscriber(ctx context.Context, subscriberID string) ([]*entity.Subscription, error) {
	return r.listPopulated(ctx, bson.M{"subscriber_id": subscriberID}, "channel_id", "channel")
}

func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"channel_id": channelID})
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

// listPopulated runs the shared lookup pipeline, joining localField against
// the users collection into the named embedded document.
func (r *SubscriptionRepository) listPopulated(ctx context.Context, match bson.M, localField, as string) ([]*entity.Subscription, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   localField,
			"foreignField": "_id",
			"as":           as,
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$" + as,
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var subs []*entity.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("failed to decode subscriptions: %w", err)
	}
	return subs, nil
}
