package service

import (
	"context"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
)

// CommentNotificationHandler 有人评论了你的帖子
// 评论的落库在别的系统，我们只消费它发出来的事件
type CommentNotificationHandler struct {
	repo repository.NotificationRepository
}

func NewCommentNotificationHandler(repo repository.NotificationRepository) *CommentNotificationHandler {
	return &CommentNotificationHandler{repo: repo}
}

// CreateNotification metadata:
// commenter: 评论的人
// owner: 帖子的主人，收件人
// postId: 被评论的帖子
// commentId: 评论本身
func (h *CommentNotificationHandler) CreateNotification(ctx context.Context, metadata map[string]string) error {
	commenter := metadata["commenter"]
	owner := metadata["owner"]
	postID := metadata["postId"]
	if commenter == "" || owner == "" || postID == "" {
		return domain.ErrInvalidInput
	}
	if commenter == owner {
		return nil
	}
	_, err := h.repo.Create(ctx, domain.Notification{
		RecipientID: owner,
		Kind:        domain.NotificationKindNewComment,
		Payload: map[string]string{
			"actor":     commenter,
			"postId":    postID,
			"commentId": metadata["commentId"],
		},
	})
	return err
}
