package ioc

import (
	"github.com/IBM/sarama"
	"github.com/malk-tv/malk/internal/events/consumer"
	"github.com/malk-tv/malk/pkg/saramax"
	"github.com/spf13/viper"
)

func InitKafka() sarama.Client {
	type Config struct {
		Addrs []string `yaml:"addrs"`
	}
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	var cfg Config
	err := viper.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}
	client, err := sarama.NewClient(cfg.Addrs, saramaCfg)
	if err != nil {
		panic(err)
	}
	return client
}

func InitSyncProducer(client sarama.Client) sarama.SyncProducer {
	res, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		panic(err)
	}
	return res
}

// NewConsumers 所有的 Consumer 都在这里注册一下
func NewConsumers(c1 *consumer.NotificationEventConsumer) []saramax.Consumer {
	return []saramax.Consumer{c1}
}
