package dao

import (
	"context"
	"encoding/json"
	"time"

	"github.com/malk-tv/malk/internal/recordstore"
)

const TableNotifications = "Notifications"

// Notification Notifications 表的 schema
// Payload 在表里存成一个 JSON 字符串字段
type Notification struct {
	ID          string
	RecipientID string
	Kind        string
	Payload     map[string]string
	Read        bool
	Ctime       time.Time
}

type NotificationDAO interface {
	Insert(ctx context.Context, n Notification) (Notification, error)
	FindByID(ctx context.Context, id string) (Notification, error)
	ListByRecipient(ctx context.Context, recipient string, onlyUnread bool) ([]Notification, error)
	// ListUnreadSince 摘要窗口：某个时间之后创建的未读通知
	ListUnreadSince(ctx context.Context, recipient string, since time.Time) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type StoreNotificationDAO struct {
	store recordstore.Client
}

func NewStoreNotificationDAO(store recordstore.Client) NotificationDAO {
	return &StoreNotificationDAO{store: store}
}

func (d *StoreNotificationDAO) Insert(ctx context.Context, n Notification) (Notification, error) {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return Notification{}, err
	}
	rec, err := d.store.Create(ctx, TableNotifications, map[string]any{
		"RecipientID": n.RecipientID,
		"Kind":        n.Kind,
		"Payload":     string(payload),
		"Read":        false,
	})
	if err != nil {
		return Notification{}, mapStoreErr(err)
	}
	return d.toEntity(rec), nil
}

func (d *StoreNotificationDAO) FindByID(ctx context.Context, id string) (Notification, error) {
	rec, err := d.store.Find(ctx, TableNotifications, id)
	if err != nil {
		return Notification{}, mapStoreErr(err)
	}
	return d.toEntity(rec), nil
}

func (d *StoreNotificationDAO) ListByRecipient(ctx context.Context,
	recipient string, onlyUnread bool) ([]Notification, error) {
	recipientPred, err := recordstore.Eq("RecipientID", recipient)
	if err != nil {
		return nil, err
	}
	formula := recipientPred
	if onlyUnread {
		formula = recordstore.And(recipientPred, recordstore.EqBool("Read", false))
	}
	return d.selectAll(ctx, formula)
}

func (d *StoreNotificationDAO) ListUnreadSince(ctx context.Context,
	recipient string, since time.Time) ([]Notification, error) {
	recipientPred, err := recordstore.Eq("RecipientID", recipient)
	if err != nil {
		return nil, err
	}
	sincePred, err := recordstore.IsAfter("CreatedTime", since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	return d.selectAll(ctx, recordstore.And(
		recipientPred,
		recordstore.EqBool("Read", false),
		sincePred,
	))
}

func (d *StoreNotificationDAO) MarkRead(ctx context.Context, id string) error {
	_, err := d.store.Update(ctx, TableNotifications, id, map[string]any{
		"Read": true,
	})
	return mapStoreErr(err)
}

func (d *StoreNotificationDAO) selectAll(ctx context.Context, formula string) ([]Notification, error) {
	recs, err := d.store.SelectAll(ctx, TableNotifications, recordstore.Query{
		Formula: formula,
		Sort: []recordstore.Sort{
			{Field: "CreatedTime", Direction: "desc"},
		},
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	res := make([]Notification, 0, len(recs))
	for _, rec := range recs {
		res = append(res, d.toEntity(rec))
	}
	return res, nil
}

func (d *StoreNotificationDAO) toEntity(rec recordstore.Record) Notification {
	var payload map[string]string
	if raw := fieldString(rec.Fields, "Payload"); raw != "" {
		// 反序列化失败就当没有 payload，通知本身还是能展示的
		_ = json.Unmarshal([]byte(raw), &payload)
	}
	return Notification{
		ID:          rec.ID,
		RecipientID: fieldString(rec.Fields, "RecipientID"),
		Kind:        fieldString(rec.Fields, "Kind"),
		Payload:     payload,
		Read:        fieldBool(rec.Fields, "Read"),
		Ctime:       rec.CreatedTime,
	}
}
