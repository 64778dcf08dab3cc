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

// RelationshipRepository 关注关系的存储编排
// 两侧的写入没有事务，只能靠固定的写入顺序来兜底：
// 建立关注先写操作者的 Following，再写对方的 FollowedBy；
// 取消关注反过来，先删对方的 FollowedBy，再删自己的 Following。
// 这样中途挂掉的话，操作者自己看到的视图一定是对的，
// 脏的只会是对方那一侧，等修复任务补齐。
type RelationshipRepository interface {
	AddFollow(ctx context.Context, follower, followee domain.User) error
	RemoveFollow(ctx context.Context, follower, followee domain.User) error
	GetFollowing(ctx context.Context, uid string) ([]string, error)
	GetFollowers(ctx context.Context, uid string) ([]string, error)
	GetFollowStatics(ctx context.Context, uid string) (domain.FollowStatics, error)
	// Remirror 修复任务用，把一个用户的两个集合跟对端重新对齐
	Remirror(ctx context.Context, u domain.User, peer domain.User) error
}

type CachedRelationshipRepository struct {
	dao   dao.UserDAO
	cache cache.FollowCache
	l     logger.LoggerV1
}

func NewCachedRelationshipRepository(d dao.UserDAO,
	c cache.FollowCache, l logger.LoggerV1) RelationshipRepository {
	return &CachedRelationshipRepository{dao: d, cache: c, l: l}
}

func (repo *CachedRelationshipRepository) AddFollow(ctx context.Context, follower, followee domain.User) error {
	// 先写操作者这一侧
	following := addUnique(follower.Following, followee.ID)
	err := repo.dao.UpdateFollowing(ctx, follower.ID, following)
	if err != nil {
		return err
	}
	followedBy := addUnique(followee.FollowedBy, follower.ID)
	err = repo.dao.UpdateFollowedBy(ctx, followee.ID, followedBy)
	if err != nil {
		// 操作者已经写成功了，这里属于部分写入
		return fmt.Errorf("%w: 写入 FollowedBy 失败: %v", domain.ErrPartialMutation, err)
	}
	if err := repo.cache.Follow(ctx, follower.ID, followee.ID); err != nil {
		// 缓存挂了不影响主流程
		repo.l.Error("更新关注统计缓存失败",
			logger.Error(err),
			logger.String("follower", follower.ID),
			logger.String("followee", followee.ID))
	}
	return nil
}

func (repo *CachedRelationshipRepository) RemoveFollow(ctx context.Context, follower, followee domain.User) error {
	// 删除的时候反过来，先删对方那一侧
	followedBy := removeAll(followee.FollowedBy, follower.ID)
	err := repo.dao.UpdateFollowedBy(ctx, followee.ID, followedBy)
	if err != nil {
		return err
	}
	following := removeAll(follower.Following, followee.ID)
	err = repo.dao.UpdateFollowing(ctx, follower.ID, following)
	if err != nil {
		return fmt.Errorf("%w: 写入 Following 失败: %v", domain.ErrPartialMutation, err)
	}
	if err := repo.cache.CancelFollow(ctx, follower.ID, followee.ID); err != nil {
		repo.l.Error("更新关注统计缓存失败",
			logger.Error(err),
			logger.String("follower", follower.ID),
			logger.String("followee", followee.ID))
	}
	return nil
}

func (repo *CachedRelationshipRepository) GetFollowing(ctx context.Context, uid string) ([]string, error) {
	u, err := repo.dao.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return u.Following, nil
}

func (repo *CachedRelationshipRepository) GetFollowers(ctx context.Context, uid string) ([]string, error) {
	u, err := repo.dao.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return u.FollowedBy, nil
}

func (repo *CachedRelationshipRepository) GetFollowStatics(ctx context.Context, uid string) (domain.FollowStatics, error) {
	// 快路径
	res, err := repo.cache.StaticsInfo(ctx, uid)
	if err == nil {
		return res, nil
	}
	// 慢路径，回源之后写回缓存
	u, err := repo.dao.FindByID(ctx, uid)
	if err != nil {
		return domain.FollowStatics{}, err
	}
	res = domain.FollowStatics{
		Followers: int64(len(u.FollowedBy)),
		Followees: int64(len(u.Following)),
	}
	if err := repo.cache.SetStaticsInfo(ctx, uid, res); err != nil {
		repo.l.Error("写回关注统计缓存失败",
			logger.Error(err),
			logger.String("uid", uid))
	}
	return res, nil
}

func (repo *CachedRelationshipRepository) Remirror(ctx context.Context, u domain.User, peer domain.User) error {
	// u 关注了 peer，但 peer 的 FollowedBy 里没有 u，补上
	if contains(u.Following, peer.ID) && !contains(peer.FollowedBy, u.ID) {
		err := repo.dao.UpdateFollowedBy(ctx, peer.ID, addUnique(peer.FollowedBy, u.ID))
		if err != nil {
			return err
		}
	}
	// peer 的 FollowedBy 里有 u，但 u 已经不关注 peer 了，删掉
	if !contains(u.Following, peer.ID) && contains(peer.FollowedBy, u.ID) {
		err := repo.dao.UpdateFollowedBy(ctx, peer.ID, removeAll(peer.FollowedBy, u.ID))
		if err != nil {
			return err
		}
	}
	return nil
}

func addUnique(ids []string, id string) []string {
	if contains(ids, id) {
		return ids
	}
	res := make([]string, 0, len(ids)+1)
	res = append(res, ids...)
	return append(res, id)
}

func removeAll(ids []string, id string) []string {
	return slice.FilterDelete(append([]string(nil), ids...), func(idx int, src string) bool {
		return src == id
	})
}

func contains(ids []string, id string) bool {
	// 比较的是规范 id，昵称不唯一，绝对不能拿昵称来做成员判断
	return slice.Contains(ids, id)
}
