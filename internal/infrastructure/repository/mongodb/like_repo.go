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

// LikeRepository is the MongoDB implementation of contract.ILikeRepository.
// A unique compound index on (target_kind, target_id, liked_by) upholds the
// one-document-per-triple invariant at the store level.
type LikeRepository struct {
	collection *mongo.Collection
}

// NewLikeRepository creates and returns a new LikeRepository instance.
func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{
		collection: db.Collection("likes"),
	}
}

var _ contract.ILikeRepository = (*LikeRepository)(nil)

// EnsureIndexes creates the unique triple index. Safe to call on startup.
func (r *LikeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "target_kind", Value: 1},
			{Key: "target_id", Value: 1},
			{Key: "liked_by", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create like index: %w", err)
	}
	return nil
}

// GetByTargetAndActor retrieves the unique like document for the triple,
// regardless of its current is_liked value.
func (r *LikeRepository) GetByTargetAndActor(ctx context.Context, kind entity.TargetKind, targetID, actorID string) (*entity.Like, error) {
	filter := bson.M{
		"target_kind": kind,
		"target_id":   targetID,
		"liked_by":    actorID,
	}

	var like entity.Like
	err := r.collection.FindOne(ctx, filter).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrLikeNotFound
		}
		return nil, fmt.Errorf("failed to retrieve like record: %w", err)
	}
	return &like, nil
}

func (r *LikeRepository) Create(ctx context.Context, like *entity.Like) error {
	like.ID = uuidgen.NewGenerator().NewUUID()
	like.CreatedAt = time.Now()
	like.UpdatedAt = like.CreatedAt

	if _, err := r.collection.InsertOne(ctx, like); err != nil {
		return fmt.Errorf("failed to create like record: %w", err)
	}
	return nil
}

// Update persists the is_liked flag of an existing document.
func (r *LikeRepository) Update(ctx context.Context, like *entity.Like) error {
	like.UpdatedAt = time.Now()

	filter := bson.M{"_id": like.ID}
	update := bson.M{"$set": bson.M{
		"is_liked":   like.IsLiked,
		"updated_at": like.UpdatedAt,
	}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update like record: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrLikeNotFound
	}
	return nil
}

// ListLikedVideoIDs returns the target ids of all currently-liked video
// relationships for the actor.
func (r *LikeRepository) ListLikedVideoIDs(ctx context.Context, actorID string) ([]string, error) {
	filter := bson.M{
		"liked_by":    actorID,
		"target_kind": entity.TargetKindVideo,
		"is_liked":    true,
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked videos: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var like entity.Like
		if err := cursor.Decode(&like); err != nil {
			return nil, fmt.Errorf("failed to decode like record: %w", err)
		}
		ids = append(ids, like.TargetID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate liked videos: %w", err)
	}
	return ids, nil
}
