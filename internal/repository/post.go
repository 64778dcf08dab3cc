package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository/cache"
	"github.com/malk-tv/malk/internal/repository/dao"
	"github.com/malk-tv/malk/pkg/logger"
)

// PostRepository 点赞这一侧的存储编排
// 写入顺序和关注一样：点赞先写操作者的 LikedPosts，再写帖子那一侧；
// 取消点赞先写帖子，再写操作者。
// 帖子的 Likes 集合和冗余的 LikeCount 在同一次更新里落库，
// 所以任何一次完成的变更之后 LikeCount == len(Likes) 都成立。
type PostRepository interface {
	Create(ctx context.Context, p domain.Post) (domain.Post, error)
	FindByID(ctx context.Context, id string) (domain.Post, error)
	AddLike(ctx context.Context, u domain.User, p domain.Post) (int64, error)
	RemoveLike(ctx context.Context, u domain.User, p domain.Post) (int64, error)
	// GetLikedIDs 操作者自己点赞过的帖子 id，以操作者自己的集合为准
	GetLikedIDs(ctx context.Context, uid string) ([]string, error)
	// ListLikedBy 从帖子那一侧反查，修复任务用
	ListLikedBy(ctx context.Context, uid string) ([]domain.Post, error)
	GetLikeCnt(ctx context.Context, postID string) (int64, error)
}

type CachedPostRepository struct {
	dao     dao.PostDAO
	userDAO dao.UserDAO
	cache   cache.PostCache
	l       logger.LoggerV1
}

func NewCachedPostRepository(d dao.PostDAO, userDAO dao.UserDAO,
	c cache.PostCache, l logger.LoggerV1) PostRepository {
	return &CachedPostRepository{
		dao:     d,
		userDAO: userDAO,
		cache:   c,
		l:       l,
	}
}

func (repo *CachedPostRepository) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	res, err := repo.dao.Insert(ctx, repo.toEntity(p))
	if err != nil {
		return domain.Post{}, err
	}
	return repo.toDomain(res), nil
}

func (repo *CachedPostRepository) FindByID(ctx context.Context, id string) (domain.Post, error) {
	p, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	return repo.toDomain(p), nil
}

func (repo *CachedPostRepository) AddLike(ctx context.Context, u domain.User, p domain.Post) (int64, error) {
	// 先写操作者这一侧
	liked := addUnique(u.LikedPosts, p.ID)
	err := repo.userDAO.UpdateLikedPosts(ctx, u.ID, liked)
	if err != nil {
		return p.LikeCount, err
	}
	likes := addUnique(p.Likes, u.ID)
	cnt := int64(len(likes))
	err = repo.dao.UpdateLikes(ctx, p.ID, likes, cnt)
	if err != nil {
		return cnt, fmt.Errorf("%w: 写入帖子 Likes 失败: %v", domain.ErrPartialMutation, err)
	}
	if err := repo.cache.IncrLikeCntIfPresent(ctx, p.ID); err != nil {
		repo.l.Error("更新点赞计数缓存失败",
			logger.Error(err),
			logger.String("postId", p.ID))
	}
	return cnt, nil
}

func (repo *CachedPostRepository) RemoveLike(ctx context.Context, u domain.User, p domain.Post) (int64, error) {
	// 取消的时候反过来，先写帖子那一侧
	likes := removeAll(p.Likes, u.ID)
	cnt := int64(len(likes))
	err := repo.dao.UpdateLikes(ctx, p.ID, likes, cnt)
	if err != nil {
		return p.LikeCount, err
	}
	liked := removeAll(u.LikedPosts, p.ID)
	err = repo.userDAO.UpdateLikedPosts(ctx, u.ID, liked)
	if err != nil {
		return cnt, fmt.Errorf("%w: 写入 LikedPosts 失败: %v", domain.ErrPartialMutation, err)
	}
	if err := repo.cache.DecrLikeCntIfPresent(ctx, p.ID); err != nil {
		repo.l.Error("更新点赞计数缓存失败",
			logger.Error(err),
			logger.String("postId", p.ID))
	}
	return cnt, nil
}

func (repo *CachedPostRepository) GetLikedIDs(ctx context.Context, uid string) ([]string, error) {
	u, err := repo.userDAO.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return u.LikedPosts, nil
}

func (repo *CachedPostRepository) ListLikedBy(ctx context.Context, uid string) ([]domain.Post, error) {
	posts, err := repo.dao.ListLikedBy(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(posts, func(idx int, src dao.Post) domain.Post {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedPostRepository) GetLikeCnt(ctx context.Context, postID string) (int64, error) {
	// 快路径
	cnt, err := repo.cache.GetLikeCnt(ctx, postID)
	if err == nil {
		return cnt, nil
	}
	p, err := repo.dao.FindByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if err := repo.cache.SetLikeCnt(ctx, postID, p.LikeCount); err != nil {
		repo.l.Error("写回点赞计数缓存失败",
			logger.Error(err),
			logger.String("postId", postID))
	}
	return p.LikeCount, nil
}

func (repo *CachedPostRepository) toDomain(p dao.Post) domain.Post {
	return domain.Post{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		VideoURL:  p.VideoURL,
		Likes:     p.Likes,
		LikeCount: p.LikeCount,
		Ctime:     p.Ctime,
	}
}

func (repo *CachedPostRepository) toEntity(p domain.Post) dao.Post {
	return dao.Post{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		VideoURL:  p.VideoURL,
		Likes:     p.Likes,
		LikeCount: p.LikeCount,
	}
}
