package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	"github.com/bereketsh/viewtube/internal/infrastructure/uuidgen"
)

type TweetRepository struct {
	collection *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{
		collection: db.Collection("tweets"),
	}
}

var _ contract.ITweetRepository = (*TweetRepository)(nil)

func (r *TweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweet.ID = uuidgen.NewGenerator().NewUUID()
	tweet.CreatedAt = time.Now()
	tweet.UpdatedAt = tweet.CreatedAt

	if _, err := r.collection.InsertOne(ctx, tweet); err != nil {
		return fmt.Errorf("failed to create tweet: %w", err)
	}
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id string) (*entity.Tweet, error) {
	var tweet entity.Tweet
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tweet)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to get tweet: %w", err)
	}
	return &tweet, nil
}

// ListByOwnerID returns all tweets by a user, newest first, with the owner
// profile populated.
func (r *TweetRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Tweet, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner_id": ownerID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner_id",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer cursor.Close(ctx)

	var tweets []*entity.Tweet
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("failed to decode tweets: %w", err)
	}
	return tweets, nil
}

func (r *TweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	tweet.UpdatedAt = time.Now()

	filter := bson.M{"_id": tweet.ID}
	update := bson.M{"$set": bson.M{
		"content":    tweet.Content,
		"updated_at": tweet.UpdatedAt,
	}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update tweet: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrTweetNotFound
	}
	return nil
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tweet: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrTweetNotFound
	}
	return nil
}
