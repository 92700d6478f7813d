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

type PlaylistRepository struct {
	collection *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{
		collection: db.Collection("playlists"),
	}
}

var _ contract.IPlaylistRepository = (*PlaylistRepository)(nil)

func (r *PlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlist.ID = uuidgen.NewGenerator().NewUUID()
	playlist.CreatedAt = time.Now()
	playlist.UpdatedAt = playlist.CreatedAt
	if playlist.VideoIDs == nil {
		playlist.VideoIDs = []string{}
	}

	if _, err := r.collection.InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}
	return nil
}

func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}
	return &playlist, nil
}

func (r *PlaylistRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer cursor.Close(ctx)

	var playlists []*entity.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, nil
}

func (r *PlaylistRepository) List(ctx context.Context, pagination contract.Pagination) ([]*entity.Playlist, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count playlists: %w", err)
	}

	skip := int64((pagination.Page - 1) * pagination.PageSize)
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(pagination.PageSize))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer cursor.Close(ctx)

	var playlists []*entity.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, 0, fmt.Errorf("failed to decode playlists: %w", err)
	}
	return playlists, total, nil
}

// Update persists name, description and the video reference sequence.
func (r *PlaylistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	playlist.UpdatedAt = time.Now()

	filter := bson.M{"_id": playlist.ID}
	update := bson.M{"$set": bson.M{
		"name":        playlist.Name,
		"description": playlist.Description,
		"video_ids":   playlist.VideoIDs,
		"updated_at":  playlist.UpdatedAt,
	}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPlaylistNotFound
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrPlaylistNotFound
	}
	return nil
}
