package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const fieldLikeCnt = "like_cnt"

// PostCache 帖子点赞计数的缓存
type PostCache interface {
	GetLikeCnt(ctx context.Context, postID string) (int64, error)
	SetLikeCnt(ctx context.Context, postID string, cnt int64) error
	IncrLikeCntIfPresent(ctx context.Context, postID string) error
	DecrLikeCntIfPresent(ctx context.Context, postID string) error
}

type RedisPostCache struct {
	client     redis.Cmdable
	expiration time.Duration
}

func NewRedisPostCache(client redis.Cmdable) PostCache {
	return &RedisPostCache{
		client:     client,
		expiration: time.Minute * 15,
	}
}

func (r *RedisPostCache) GetLikeCnt(ctx context.Context, postID string) (int64, error) {
	data, err := r.client.HGet(ctx, r.key(postID), fieldLikeCnt).Result()
	if err == redis.Nil {
		return 0, ErrKeyNotExist
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(data, 10, 64)
}

func (r *RedisPostCache) SetLikeCnt(ctx context.Context, postID string, cnt int64) error {
	key := r.key(postID)
	err := r.client.HSet(ctx, key, fieldLikeCnt, cnt).Err()
	if err != nil {
		return err
	}
	return r.client.Expire(ctx, key, r.expiration).Err()
}

func (r *RedisPostCache) IncrLikeCntIfPresent(ctx context.Context, postID string) error {
	return r.client.Eval(ctx, luaIncrCnt, []string{r.key(postID)}, fieldLikeCnt, 1).Err()
}

func (r *RedisPostCache) DecrLikeCntIfPresent(ctx context.Context, postID string) error {
	return r.client.Eval(ctx, luaIncrCnt, []string{r.key(postID)}, fieldLikeCnt, -1).Err()
}

func (r *RedisPostCache) key(postID string) string {
	return fmt.Sprintf("post:intr:%s", postID)
}
