package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/events"
	"github.com/malk-tv/malk/internal/repository"
	"github.com/malk-tv/malk/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// RelationshipService 关注/取关的状态机
// 对外只有一个 toggle 语义：调用方只给操作者和目标，
// 最终状态由当前存储里的状态决定，连着调两次一定回到原点。
type RelationshipService interface {
	ToggleFollow(ctx context.Context, followerID, followeeID string) (bool, error)
	GetFollowing(ctx context.Context, uid string) ([]string, error)
	GetFollowers(ctx context.Context, uid string) ([]string, error)
	GetFollowStatics(ctx context.Context, uid string) (domain.FollowStatics, error)
}

type relationshipService struct {
	userRepo repository.UserRepository
	repo     repository.RelationshipRepository
	producer events.Producer
	l        logger.LoggerV1
}

func NewRelationshipService(userRepo repository.UserRepository,
	repo repository.RelationshipRepository,
	producer events.Producer,
	l logger.LoggerV1) RelationshipService {
	return &relationshipService{
		userRepo: userRepo,
		repo:     repo,
		producer: producer,
		l:        l,
	}
}

func (svc *relationshipService) ToggleFollow(ctx context.Context, followerID, followeeID string) (bool, error) {
	if followerID == "" || followeeID == "" || followerID == followeeID {
		// 自己关注自己没有意义，写入之前就拒绝
		return false, domain.ErrInvalidInput
	}
	var (
		eg       errgroup.Group
		follower domain.User
		followee domain.User
	)
	eg.Go(func() error {
		var err error
		follower, err = svc.userRepo.FindByID(ctx, followerID)
		return err
	})
	eg.Go(func() error {
		var err error
		followee, err = svc.userRepo.FindByID(ctx, followeeID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return false, err
	}
	// 成员判断以操作者自己的 Following 为准
	following := slice.Contains(follower.Following, followeeID)
	if following {
		err := svc.repo.RemoveFollow(ctx, follower, followee)
		if err != nil && !errors.Is(err, domain.ErrPartialMutation) {
			return false, err
		}
		if err != nil {
			// 操作者这一侧已经是对的，留给修复任务，不报给调用方
			svc.l.Error("取关只写成功了一半",
				logger.Error(err),
				logger.String("follower", followerID),
				logger.String("followee", followeeID))
		}
		// 取关不发通知
		return false, nil
	}
	err := svc.repo.AddFollow(ctx, follower, followee)
	if err != nil && !errors.Is(err, domain.ErrPartialMutation) {
		return false, err
	}
	if err != nil {
		svc.l.Error("关注只写成功了一半",
			logger.Error(err),
			logger.String("follower", followerID),
			logger.String("followee", followeeID))
	}
	// 只有进入关注状态才发事件，通知在消费端生成，失败绝不影响这次操作
	evt := events.RelationshipEvent{
		Type: events.TypeFollow,
		Metadata: map[string]string{
			"follower": followerID,
			"followee": followeeID,
		},
	}
	if err := svc.producer.ProduceRelationshipEvent(ctx, evt); err != nil {
		svc.l.Error("发送关注事件失败",
			logger.Error(err),
			logger.String("follower", followerID),
			logger.String("followee", followeeID))
	}
	return true, nil
}

func (svc *relationshipService) GetFollowing(ctx context.Context, uid string) ([]string, error) {
	return svc.repo.GetFollowing(ctx, uid)
}

func (svc *relationshipService) GetFollowers(ctx context.Context, uid string) ([]string, error) {
	return svc.repo.GetFollowers(ctx, uid)
}

func (svc *relationshipService) GetFollowStatics(ctx context.Context, uid string) (domain.FollowStatics, error) {
	return svc.repo.GetFollowStatics(ctx, uid)
}
