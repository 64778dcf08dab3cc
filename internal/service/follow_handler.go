package service

import (
	"context"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
)

// FollowNotificationHandler 有人关注了你
// 只在进入关注状态的时候触发，取关没有事件
type FollowNotificationHandler struct {
	repo repository.NotificationRepository
}

func NewFollowNotificationHandler(repo repository.NotificationRepository) *FollowNotificationHandler {
	return &FollowNotificationHandler{repo: repo}
}

// CreateNotification metadata 里面需要两个 key，线下协商好：
// follower: 关注的人
// followee: 被关注的人，也就是收件人
func (h *FollowNotificationHandler) CreateNotification(ctx context.Context, metadata map[string]string) error {
	follower := metadata["follower"]
	followee := metadata["followee"]
	if follower == "" || followee == "" {
		return domain.ErrInvalidInput
	}
	// 通知发给被关注的那一方，永远不发给操作者自己
	_, err := h.repo.Create(ctx, domain.Notification{
		RecipientID: followee,
		Kind:        domain.NotificationKindNewFollower,
		Payload: map[string]string{
			"actor": follower,
		},
	})
	return err
}
