package consumer

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/malk-tv/malk/internal/events"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/malk-tv/malk/pkg/saramax"
)

// NotificationEventConsumer 通知扇出在消费端做
// 实时性要求不高，走消息队列把它挪出关键路径，
// 生成通知失败只会在这边重试，永远不会让触发它的那次操作失败。
type NotificationEventConsumer struct {
	client sarama.Client
	l      logger.LoggerV1
	svc    service.NotificationService
}

func NewNotificationEventConsumer(client sarama.Client,
	l logger.LoggerV1,
	svc service.NotificationService) *NotificationEventConsumer {
	return &NotificationEventConsumer{
		client: client,
		l:      l,
		svc:    svc,
	}
}

func (c *NotificationEventConsumer) Start() error {
	cg, err := sarama.NewConsumerGroupFromClient("notification_fanout", c.client)
	if err != nil {
		return err
	}
	go func() {
		err := cg.Consume(context.Background(),
			[]string{events.TopicRelationshipEvent},
			saramax.NewHandler[events.RelationshipEvent](c.l, c.Consume))
		if err != nil {
			c.l.Error("退出了消费循环异常", logger.Error(err))
		}
	}()
	return err
}

func (c *NotificationEventConsumer) Consume(msg *sarama.ConsumerMessage, evt events.RelationshipEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	return c.svc.CreateNotificationEvent(ctx, evt.Type, evt.Metadata)
}
