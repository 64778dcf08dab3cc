package cache

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/redis/go-redis/v9"
)

//go:embed lua/incr_cnt.lua
var luaIncrCnt string

var ErrKeyNotExist = errors.New("cache: key 不存在")

const (
	fieldFollowerCnt = "follower_cnt"
	fieldFolloweeCnt = "followee_cnt"
)

// FollowCache 关注统计的缓存
// 只缓存计数，关注列表本身命中率太低，不值得缓存
type FollowCache interface {
	StaticsInfo(ctx context.Context, uid string) (domain.FollowStatics, error)
	SetStaticsInfo(ctx context.Context, uid string, statics domain.FollowStatics) error
	Follow(ctx context.Context, follower, followee string) error
	CancelFollow(ctx context.Context, follower, followee string) error
}

type RedisFollowCache struct {
	client     redis.Cmdable
	expiration time.Duration
}

func NewRedisFollowCache(client redis.Cmdable) FollowCache {
	return &RedisFollowCache{
		client:     client,
		expiration: time.Minute * 15,
	}
}

func (r *RedisFollowCache) StaticsInfo(ctx context.Context, uid string) (domain.FollowStatics, error) {
	data, err := r.client.HGetAll(ctx, r.key(uid)).Result()
	if err != nil {
		return domain.FollowStatics{}, err
	}
	if len(data) == 0 {
		return domain.FollowStatics{}, ErrKeyNotExist
	}
	followers, _ := strconv.ParseInt(data[fieldFollowerCnt], 10, 64)
	followees, _ := strconv.ParseInt(data[fieldFolloweeCnt], 10, 64)
	return domain.FollowStatics{
		Followers: followers,
		Followees: followees,
	}, nil
}

func (r *RedisFollowCache) SetStaticsInfo(ctx context.Context, uid string, statics domain.FollowStatics) error {
	key := r.key(uid)
	err := r.client.HMSet(ctx, key, map[string]any{
		fieldFollowerCnt: statics.Followers,
		fieldFolloweeCnt: statics.Followees,
	}).Err()
	if err != nil {
		return err
	}
	return r.client.Expire(ctx, key, r.expiration).Err()
}

// Follow A 关注了 B：A 的 followee 数 +1，B 的 follower 数 +1
// 都是 IfPresent 语义，缓存没有就等回源
func (r *RedisFollowCache) Follow(ctx context.Context, follower, followee string) error {
	return r.updateStaticsInfo(ctx, follower, followee, 1)
}

func (r *RedisFollowCache) CancelFollow(ctx context.Context, follower, followee string) error {
	return r.updateStaticsInfo(ctx, follower, followee, -1)
}

func (r *RedisFollowCache) updateStaticsInfo(ctx context.Context, follower, followee string, delta int64) error {
	err := r.client.Eval(ctx, luaIncrCnt,
		[]string{r.key(follower)}, fieldFolloweeCnt, delta).Err()
	if err != nil {
		return err
	}
	return r.client.Eval(ctx, luaIncrCnt,
		[]string{r.key(followee)}, fieldFollowerCnt, delta).Err()
}

func (r *RedisFollowCache) key(uid string) string {
	return fmt.Sprintf("follow:statics:%s", uid)
}
