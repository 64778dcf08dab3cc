package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/repository/dao"
)

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (domain.Notification, error)
	FindByID(ctx context.Context, id string) (domain.Notification, error)
	ListByRecipient(ctx context.Context, recipient string, onlyUnread bool) ([]domain.Notification, error)
	ListUnreadSince(ctx context.Context, recipient string, since time.Time) ([]domain.Notification, error)
	// MarkRead 只能单向翻转，重复调用是幂等的
	MarkRead(ctx context.Context, id string) error
}

type StoreNotificationRepository struct {
	dao dao.NotificationDAO
}

func NewStoreNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &StoreNotificationRepository{dao: d}
}

func (repo *StoreNotificationRepository) Create(ctx context.Context, n domain.Notification) (domain.Notification, error) {
	res, err := repo.dao.Insert(ctx, dao.Notification{
		RecipientID: n.RecipientID,
		Kind:        string(n.Kind),
		Payload:     n.Payload,
	})
	if err != nil {
		return domain.Notification{}, err
	}
	return repo.toDomain(res), nil
}

func (repo *StoreNotificationRepository) FindByID(ctx context.Context, id string) (domain.Notification, error) {
	n, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Notification{}, err
	}
	return repo.toDomain(n), nil
}

func (repo *StoreNotificationRepository) ListByRecipient(ctx context.Context,
	recipient string, onlyUnread bool) ([]domain.Notification, error) {
	ns, err := repo.dao.ListByRecipient(ctx, recipient, onlyUnread)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return repo.toDomain(src)
	}), nil
}

func (repo *StoreNotificationRepository) ListUnreadSince(ctx context.Context,
	recipient string, since time.Time) ([]domain.Notification, error) {
	ns, err := repo.dao.ListUnreadSince(ctx, recipient, since)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return repo.toDomain(src)
	}), nil
}

func (repo *StoreNotificationRepository) MarkRead(ctx context.Context, id string) error {
	return repo.dao.MarkRead(ctx, id)
}

func (repo *StoreNotificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Kind:        domain.NotificationKind(n.Kind),
		Payload:     n.Payload,
		Read:        n.Read,
		Ctime:       n.Ctime,
	}
}
