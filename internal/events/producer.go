package events

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
)

const TopicRelationshipEvent = "relationship_event"

// RelationshipEvent 关系/点赞变更之后发出去的事件
// Type 区分业务，Metadata 的 key 线下跟各业务方协商好
type RelationshipEvent struct {
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
}

const (
	TypeFollow = "follow_event"
	TypeLike   = "like_event"
	// TypeComment 评论，评论本身的落库在别的系统，我们只管通知
	TypeComment = "comment_event"
	// TypePost 关注的人发了新帖
	TypePost = "post_event"
	// TypeFeature 新功能公告，广播
	TypeFeature = "feature_event"
)

type Producer interface {
	ProduceRelationshipEvent(ctx context.Context, evt RelationshipEvent) error
}

type SaramaProducer struct {
	producer sarama.SyncProducer
}

func NewSaramaProducer(producer sarama.SyncProducer) Producer {
	return &SaramaProducer{producer: producer}
}

func (s *SaramaProducer) ProduceRelationshipEvent(ctx context.Context, evt RelationshipEvent) error {
	val, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: TopicRelationshipEvent,
		Value: sarama.ByteEncoder(val),
	})
	return err
}
