package service

import (
	"context"
	"fmt"

	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository"
)

// NotificationHandler 具体业务的通知生成逻辑，按事件的 type 来分
type NotificationHandler interface {
	CreateNotification(ctx context.Context, metadata map[string]string) error
}

// NotificationService 处理公共部分
// 并且负责找出 Handler 来处理业务的个性部分
type NotificationService interface {
	// CreateNotificationEvent 消费端入口，按 typ 分发
	CreateNotificationEvent(ctx context.Context, typ string, metadata map[string]string) error
	List(ctx context.Context, recipient string, onlyUnread bool) ([]domain.Notification, error)
	// MarkRead 单向翻转已读，重复调用是 no-op
	MarkRead(ctx context.Context, recipient string, id string) error
}

type notificationService struct {
	// key 就是事件的 type，value 是具体业务的处理逻辑
	handlerMap map[string]NotificationHandler
	repo       repository.NotificationRepository
}

// NewNotificationService handlerMap 在 IOC 完成组装
func NewNotificationService(repo repository.NotificationRepository,
	handlerMap map[string]NotificationHandler) NotificationService {
	return &notificationService{
		repo:       repo,
		handlerMap: handlerMap,
	}
}

func (svc *notificationService) CreateNotificationEvent(ctx context.Context,
	typ string, metadata map[string]string) error {
	handler, ok := svc.handlerMap[typ]
	if !ok {
		// 走到这里基本是代码错误，或者业务方发了不认识的 type
		return fmt.Errorf("未找到正确的业务 handler %s", typ)
	}
	return handler.CreateNotification(ctx, metadata)
}

func (svc *notificationService) List(ctx context.Context,
	recipient string, onlyUnread bool) ([]domain.Notification, error) {
	if recipient == "" {
		return nil, domain.ErrInvalidInput
	}
	return svc.repo.ListByRecipient(ctx, recipient, onlyUnread)
}

func (svc *notificationService) MarkRead(ctx context.Context, recipient string, id string) error {
	if recipient == "" || id == "" {
		return domain.ErrInvalidInput
	}
	n, err := svc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// 通知只有收件人自己可见，别人的一律当不存在
	if n.RecipientID != recipient {
		return domain.ErrNotFound
	}
	if n.Read {
		// 已经读过了，幂等返回
		return nil
	}
	return svc.repo.MarkRead(ctx, id)
}
