package ioc

import (
	"github.com/malk-tv/malk/internal/events"
	"github.com/malk-tv/malk/internal/repository"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/pkg/logger"
)

// InitNotificationHandlers 各业务的通知生成逻辑，按事件 type 注册
func InitNotificationHandlers(repo repository.NotificationRepository,
	relRepo repository.RelationshipRepository,
	l logger.LoggerV1) map[string]service.NotificationHandler {
	return map[string]service.NotificationHandler{
		events.TypeFollow:  service.NewFollowNotificationHandler(repo),
		events.TypeLike:    service.NewLikeNotificationHandler(repo),
		events.TypeComment: service.NewCommentNotificationHandler(repo),
		events.TypePost:    service.NewPostNotificationHandler(repo, relRepo, l),
		events.TypeFeature: service.NewFeatureNotificationHandler(repo, l),
	}
}
