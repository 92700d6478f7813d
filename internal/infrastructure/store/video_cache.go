package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bereketsh/viewtube/internal/domain/contract"
)

// VideoCacheStore is the Redis implementation of contract.IVideoCache.
type VideoCacheStore struct {
	rdb      *redis.Client
	listTTL  time.Duration
	countTTL time.Duration
}

func NewVideoCacheStore(rdb *redis.Client) *VideoCacheStore {
	return &VideoCacheStore{
		rdb:      rdb,
		listTTL:  5 * time.Minute,
		countTTL: 10 * time.Minute,
	}
}

var _ contract.IVideoCache = (*VideoCacheStore)(nil)

func subscriberCountKey(channelID string) string {
	return fmt.Sprintf("channel:subscribers:%s", channelID)
}

func (c *VideoCacheStore) GetVideosPage(ctx context.Context, key string) (*contract.CachedVideosPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedVideosPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *VideoCacheStore) SetVideosPage(ctx context.Context, key string, page *contract.CachedVideosPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidateVideoLists drops every cached listing page.
func (c *VideoCacheStore) InvalidateVideoLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "videos:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}

func (c *VideoCacheStore) GetSubscriberCount(ctx context.Context, channelID string) (int64, bool, error) {
	v, err := c.rdb.Get(ctx, subscriberCountKey(channelID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	count, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return count, true, nil
}

func (c *VideoCacheStore) SetSubscriberCount(ctx context.Context, channelID string, count int64) error {
	return c.rdb.Set(ctx, subscriberCountKey(channelID), count, c.countTTL).Err()
}

func (c *VideoCacheStore) InvalidateSubscriberCount(ctx context.Context, channelID string) error {
	return c.rdb.Del(ctx, subscriberCountKey(channelID)).Err()
}
