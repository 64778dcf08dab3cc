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

// LikeService 点赞/取消点赞，跟关注一样是严格的两态 toggle
type LikeService interface {
	ToggleLike(ctx context.Context, uid, postID string) (liked bool, likeCount int64, err error)
	GetLikedPostIDs(ctx context.Context, uid string) ([]string, error)
	GetLikeCnt(ctx context.Context, postID string) (int64, error)
}

type likeService struct {
	userRepo repository.UserRepository
	repo     repository.PostRepository
	producer events.Producer
	l        logger.LoggerV1
}

func NewLikeService(userRepo repository.UserRepository,
	repo repository.PostRepository,
	producer events.Producer,
	l logger.LoggerV1) LikeService {
	return &likeService{
		userRepo: userRepo,
		repo:     repo,
		producer: producer,
		l:        l,
	}
}

func (svc *likeService) ToggleLike(ctx context.Context, uid, postID string) (bool, int64, error) {
	if uid == "" || postID == "" {
		return false, 0, domain.ErrInvalidInput
	}
	var (
		eg   errgroup.Group
		user domain.User
		post domain.Post
	)
	eg.Go(func() error {
		var err error
		user, err = svc.userRepo.FindByID(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		post, err = svc.repo.FindByID(ctx, postID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return false, 0, err
	}
	liked := slice.Contains(user.LikedPosts, postID)
	if liked {
		cnt, err := svc.repo.RemoveLike(ctx, user, post)
		if err != nil && !errors.Is(err, domain.ErrPartialMutation) {
			return false, 0, err
		}
		if err != nil {
			svc.l.Error("取消点赞只写成功了一半",
				logger.Error(err),
				logger.String("uid", uid),
				logger.String("postId", postID))
		}
		return false, cnt, nil
	}
	cnt, err := svc.repo.AddLike(ctx, user, post)
	if err != nil && !errors.Is(err, domain.ErrPartialMutation) {
		return false, 0, err
	}
	if err != nil {
		svc.l.Error("点赞只写成功了一半",
			logger.Error(err),
			logger.String("uid", uid),
			logger.String("postId", postID))
	}
	// 自己给自己点赞也是合法的，计数照常更新
	// 要不要通知是消费端的事，那边会把 liker == owner 的过滤掉
	evt := events.RelationshipEvent{
		Type: events.TypeLike,
		Metadata: map[string]string{
			"liker":  uid,
			"owner":  post.OwnerID,
			"postId": postID,
		},
	}
	if err := svc.producer.ProduceRelationshipEvent(ctx, evt); err != nil {
		svc.l.Error("发送点赞事件失败",
			logger.Error(err),
			logger.String("uid", uid),
			logger.String("postId", postID))
	}
	return true, cnt, nil
}

func (svc *likeService) GetLikedPostIDs(ctx context.Context, uid string) ([]string, error) {
	return svc.repo.GetLikedIDs(ctx, uid)
}

func (svc *likeService) GetLikeCnt(ctx context.Context, postID string) (int64, error) {
	return svc.repo.GetLikeCnt(ctx, postID)
}
