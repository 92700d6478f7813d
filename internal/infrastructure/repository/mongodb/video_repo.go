package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	"github.com/bereketsh/viewtube/internal/infrastructure/uuidgen"
)

type VideoRepository struct {
	collection *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{
		collection: db.Collection("videos"),
	}
}

var _ contract.IVideoRepository = (*VideoRepository)(nil)

func (r *VideoRepository) Create(ctx context.Context, video *entity.Video) error {
	video.ID = uuidgen.NewGenerator().NewUUID()
	video.CreatedAt = time.Now()
	video.UpdatedAt = video.CreatedAt

	if _, err := r.collection.InsertOne(ctx, video); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	var video entity.Video
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return &video, nil
}

// GetByIDs fetches videos by id, preserving the order of ids. Missing ids
// are skipped.
func (r *VideoRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Video, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}
	defer cursor.Close(ctx)

	byID := make(map[string]*entity.Video, len(ids))
	for cursor.Next(ctx) {
		var video entity.Video
		if err := cursor.Decode(&video); err != nil {
			return nil, fmt.Errorf("failed to decode video: %w", err)
		}
		byID[video.ID] = &video
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate videos: %w", err)
	}

	videos := make([]*entity.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func (r *VideoRepository) List(ctx context.Context, opts contract.VideoListOptions) ([]*entity.Video, int64, error) {
	filter := bson.M{}
	if opts.OwnerID != "" {
		filter["owner_id"] = opts.OwnerID
	}
	if opts.PublishedOnly {
		filter["is_published"] = true
	}
	if opts.Query != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: opts.Query, Options: "i"}}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count videos: %w", err)
	}

	skip := int64((opts.Page - 1) * opts.PageSize)
	findOpts := options.Find().
		SetSort(bson.D{{Key: string(opts.SortBy), Value: int(opts.Direction)}}).
		SetSkip(skip).
		SetLimit(int64(opts.PageSize))

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list videos: %w", err)
	}
	defer cursor.Close(ctx)

	var videos []*entity.Video
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, 0, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, total, nil
}

// Update persists the mutable video fields.
func (r *VideoRepository) Update(ctx context.Context, video *entity.Video) error {
	video.UpdatedAt = time.Now()

	filter := bson.M{"_id": video.ID}
	update := bson.M{"$set": bson.M{
		"title":        video.Title,
		"description":  video.Description,
		"thumbnail":    video.Thumbnail,
		"is_published": video.IsPublished,
		"updated_at":   video.UpdatedAt,
	}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrVideoNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrVideoNotFound
	}
	return nil
}
