package service

import (
	"context"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
	"github.com/malk-tv/malk/pkg/logger"
)

// PostNotificationHandler 你关注的人发了新帖
// 这是一对多的扇出，收件人是发帖人的全部粉丝
type PostNotificationHandler struct {
	repo    repository.NotificationRepository
	relRepo repository.RelationshipRepository
	l       logger.LoggerV1
}

func NewPostNotificationHandler(repo repository.NotificationRepository,
	relRepo repository.RelationshipRepository,
	l logger.LoggerV1) *PostNotificationHandler {
	return &PostNotificationHandler{
		repo:    repo,
		relRepo: relRepo,
		l:       l,
	}
}

// CreateNotification metadata:
// owner: 发帖的人
// postId: 新帖子
func (h *PostNotificationHandler) CreateNotification(ctx context.Context, metadata map[string]string) error {
	owner := metadata["owner"]
	postID := metadata["postId"]
	if owner == "" || postID == "" {
		return domain.ErrInvalidInput
	}
	followers, err := h.relRepo.GetFollowers(ctx, owner)
	if err != nil {
		return err
	}
	for _, follower := range followers {
		_, err := h.repo.Create(ctx, domain.Notification{
			RecipientID: follower,
			Kind:        domain.NotificationKindNewPost,
			Payload: map[string]string{
				"actor":  owner,
				"postId": postID,
			},
		})
		if err != nil {
			// 一个收件人失败不影响其他人，记日志继续
			h.l.Error("给粉丝创建新帖通知失败",
				logger.Error(err),
				logger.String("recipient", follower),
				logger.String("postId", postID))
		}
	}
	return nil
}
