package service

import (
	"context"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
)

// LikeNotificationHandler 有人赞了你的帖子
type LikeNotificationHandler struct {
	repo repository.NotificationRepository
}

func NewLikeNotificationHandler(repo repository.NotificationRepository) *LikeNotificationHandler {
	return &LikeNotificationHandler{repo: repo}
}

// CreateNotification metadata 里面需要三个 key：
// liker: 点赞的人
// owner: 帖子的主人，也就是收件人
// postId: 被点赞的帖子
func (h *LikeNotificationHandler) CreateNotification(ctx context.Context, metadata map[string]string) error {
	liker := metadata["liker"]
	owner := metadata["owner"]
	postID := metadata["postId"]
	if liker == "" || owner == "" || postID == "" {
		return domain.ErrInvalidInput
	}
	if liker == owner {
		// 自己赞自己的帖子，计数照常涨，但没必要通知自己
		return nil
	}
	_, err := h.repo.Create(ctx, domain.Notification{
		RecipientID: owner,
		Kind:        domain.NotificationKindNewLike,
		Payload: map[string]string{
			"actor":  liker,
			"postId": postID,
		},
	})
	return err
}
