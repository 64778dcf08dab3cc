package service

import (
	"context"
	"strings"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
	"github.com/malk-tv/malk/pkg/logger"
)

// FeatureNotificationHandler 新功能公告，广播给一批收件人
type FeatureNotificationHandler struct {
	repo repository.NotificationRepository
	l    logger.LoggerV1
}

func NewFeatureNotificationHandler(repo repository.NotificationRepository,
	l logger.LoggerV1) *FeatureNotificationHandler {
	return &FeatureNotificationHandler{repo: repo, l: l}
}

// CreateNotification metadata:
// feature: 功能名
// recipients: 收件人 id，逗号分隔
func (h *FeatureNotificationHandler) CreateNotification(ctx context.Context, metadata map[string]string) error {
	feature := metadata["feature"]
	recipients := metadata["recipients"]
	if feature == "" || recipients == "" {
		return domain.ErrInvalidInput
	}
	for _, recipient := range strings.Split(recipients, ",") {
		recipient = strings.TrimSpace(recipient)
		if recipient == "" {
			continue
		}
		_, err := h.repo.Create(ctx, domain.Notification{
			RecipientID: recipient,
			Kind:        domain.NotificationKindNewFeature,
			Payload: map[string]string{
				"feature": feature,
			},
		})
		if err != nil {
			h.l.Error("创建功能公告通知失败",
				logger.Error(err),
				logger.String("recipient", recipient),
				logger.String("feature", feature))
		}
	}
	return nil
}
