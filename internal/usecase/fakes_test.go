package usecase_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/bereketsh/viewtube/internal/domain/contract"
	"github.com/bereketsh/viewtube/internal/domain/entity"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

// In-memory fakes backing the usecase tests. Each fake upholds the same
// contract as the Mongo implementation, including the not-found sentinels.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

var _ usecasecontract.IAppLogger = nopLogger{}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

type fakeVideoRepo struct {
	videos map[string]*entity.Video
}

func newFakeVideoRepo(videos ...*entity.Video) *fakeVideoRepo {
	r := &fakeVideoRepo{videos: make(map[string]*entity.Video)}
	for _, v := range videos {
		r.videos[v.ID] = v
	}
	return r
}

func (r *fakeVideoRepo) Create(_ context.Context, video *entity.Video) error {
	if video.ID == "" {
		video.ID = uuid.NewString()
	}
	r.videos[video.ID] = video
	return nil
}

func (r *fakeVideoRepo) GetByID(_ context.Context, id string) (*entity.Video, error) {
	if v, ok := r.videos[id]; ok {
		return v, nil
	}
	return nil, contract.ErrVideoNotFound
}

func (r *fakeVideoRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Video, error) {
	out := make([]*entity.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := r.videos[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVideoRepo) List(_ context.Context, opts contract.VideoListOptions) ([]*entity.Video, int64, error) {
	var out []*entity.Video
	for _, v := range r.videos {
		if opts.PublishedOnly && !v.IsPublished {
			continue
		}
		if opts.OwnerID != "" && v.OwnerID != opts.OwnerID {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeVideoRepo) Update(_ context.Context, video *entity.Video) error {
	if _, ok := r.videos[video.ID]; !ok {
		return contract.ErrVideoNotFound
	}
	r.videos[video.ID] = video
	return nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.videos[id]; !ok {
		return contract.ErrVideoNotFound
	}
	delete(r.videos, id)
	return nil
}

type fakeCommentRepo struct {
	comments map[string]*entity.Comment
}

func newFakeCommentRepo(comments ...*entity.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: make(map[string]*entity.Comment)}
	for _, c := range comments {
		r.comments[c.ID] = c
	}
	return r
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	if c, ok := r.comments[id]; ok {
		return c, nil
	}
	return nil, contract.ErrCommentNotFound
}

func (r *fakeCommentRepo) ListByVideoID(_ context.Context, videoID string) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.VideoID == videoID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return contract.ErrCommentNotFound
	}
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return contract.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

type fakeTweetRepo struct {
	tweets map[string]*entity.Tweet
}

func newFakeTweetRepo(tweets ...*entity.Tweet) *fakeTweetRepo {
	r := &fakeTweetRepo{tweets: make(map[string]*entity.Tweet)}
	for _, t := range tweets {
		r.tweets[t.ID] = t
	}
	return r
}

func (r *fakeTweetRepo) Create(_ context.Context, tweet *entity.Tweet) error {
	if tweet.ID == "" {
		tweet.ID = uuid.NewString()
	}
	r.tweets[tweet.ID] = tweet
	return nil
}

func (r *fakeTweetRepo) GetByID(_ context.Context, id string) (*entity.Tweet, error) {
	if t, ok := r.tweets[id]; ok {
		return t, nil
	}
	return nil, contract.ErrTweetNotFound
}

func (r *fakeTweetRepo) ListByOwnerID(_ context.Context, ownerID string) ([]*entity.Tweet, error) {
	var out []*entity.Tweet
	for _, t := range r.tweets {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTweetRepo) Update(_ context.Context, tweet *entity.Tweet) error {
	if _, ok := r.tweets[tweet.ID]; !ok {
		return contract.ErrTweetNotFound
	}
	r.tweets[tweet.ID] = tweet
	return nil
}

func (r *fakeTweetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tweets[id]; !ok {
		return contract.ErrTweetNotFound
	}
	delete(r.tweets, id)
	return nil
}

type fakePlaylistRepo struct {
	playlists map[string]*entity.Playlist
}

func newFakePlaylistRepo(playlists ...*entity.Playlist) *fakePlaylistRepo {
	r := &fakePlaylistRepo{playlists: make(map[string]*entity.Playlist)}
	for _, p := range playlists {
		r.playlists[p.ID] = p
	}
	return r
}

func (r *fakePlaylistRepo) Create(_ context.Context, playlist *entity.Playlist) error {
	if playlist.ID == "" {
		playlist.ID = uuid.NewString()
	}
	r.playlists[playlist.ID] = playlist
	return nil
}

func (r *fakePlaylistRepo) GetByID(_ context.Context, id string) (*entity.Playlist, error) {
	if p, ok := r.playlists[id]; ok {
		return p, nil
	}
	return nil, contract.ErrPlaylistNotFound
}

func (r *fakePlaylistRepo) ListByOwnerID(_ context.Context, ownerID string) ([]*entity.Playlist, error) {
	var out []*entity.Playlist
	for _, p := range r.playlists {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePlaylistRepo) List(_ context.Context, _ contract.Pagination) ([]*entity.Playlist, int64, error) {
	var out []*entity.Playlist
	for _, p := range r.playlists {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePlaylistRepo) Update(_ context.Context, playlist *entity.Playlist) error {
	if _, ok := r.playlists[playlist.ID]; !ok {
		return contract.ErrPlaylistNotFound
	}
	r.playlists[playlist.ID] = playlist
	return nil
}

func (r *fakePlaylistRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.playlists[id]; !ok {
		return contract.ErrPlaylistNotFound
	}
	delete(r.playlists, id)
	return nil
}

type fakeLikeRepo struct {
	likes map[string]*entity.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]*entity.Like)}
}

func likeKey(kind entity.TargetKind, targetID, actorID string) string {
	return fmt.Sprintf("%s/%s/%s", kind, targetID, actorID)
}

func (r *fakeLikeRepo) GetByTargetAndActor(_ context.Context, kind entity.TargetKind, targetID, actorID string) (*entity.Like, error) {
	if l, ok := r.likes[likeKey(kind, targetID, actorID)]; ok {
		return l, nil
	}
	return nil, contract.ErrLikeNotFound
}

func (r *fakeLikeRepo) Create(_ context.Context, like *entity.Like) error {
	if like.ID == "" {
		like.ID = uuid.NewString()
	}
	r.likes[likeKey(like.TargetKind, like.TargetID, like.LikedBy)] = like
	return nil
}

func (r *fakeLikeRepo) Update(_ context.Context, like *entity.Like) error {
	key := likeKey(like.TargetKind, like.TargetID, like.LikedBy)
	if _, ok := r.likes[key]; !ok {
		return contract.ErrLikeNotFound
	}
	r.likes[key] = like
	return nil
}

func (r *fakeLikeRepo) ListLikedVideoIDs(_ context.Context, actorID string) ([]string, error) {
	var ids []string
	for _, l := range r.likes {
		if l.TargetKind == entity.TargetKindVideo && l.LikedBy == actorID && l.IsLiked {
			ids = append(ids, l.TargetID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeLikeRepo) count() int {
	return len(r.likes)
}

type fakeSubscriptionRepo struct {
	subs map[string]*entity.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[string]*entity.Subscription)}
}

func subKey(channelID, subscriberID string) string {
	return channelID + "/" + subscriberID
}

func (r *fakeSubscriptionRepo) Get(_ context.Context, channelID, subscriberID string) (*entity.Subscription, error) {
	if s, ok := r.subs[subKey(channelID, subscriberID)]; ok {
		return s, nil
	}
	return nil, contract.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *entity.Subscription) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	r.subs[subKey(sub.ChannelID, sub.SubscriberID)] = sub
	return nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, channelID, subscriberID string) error {
	key := subKey(channelID, subscriberID)
	if _, ok := r.subs[key]; !ok {
		return contract.ErrSubscriptionNotFound
	}
	delete(r.subs, key)
	return nil
}

func (r *fakeSubscriptionRepo) ListByChannel(_ context.Context, channelID string) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, s := range r.subs {
		if s.ChannelID == channelID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) ListBySubscriber(_ context.Context, subscriberID string) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, s := range r.subs {
		if s.SubscriberID == subscriberID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) CountByChannel(_ context.Context, channelID string) (int64, error) {
	var n int64
	for _, s := range r.subs {
		if s.ChannelID == channelID {
			n++
		}
	}
	return n, nil
}
