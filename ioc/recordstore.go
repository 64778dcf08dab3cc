package ioc

import (
	"github.com/malk-tv/malk/internal/recordstore"
	"github.com/malk-tv/malk/pkg/logger"
	"github.com/spf13/viper"
)

func InitRecordStore(l logger.LoggerV1) recordstore.Client {
	type Config struct {
		BaseURL string `yaml:"baseUrl"`
		Token   string `yaml:"token"`
	}
	var cfg Config
	err := viper.UnmarshalKey("recordstore", &cfg)
	if err != nil {
		panic(err)
	}
	return recordstore.NewHTTPClient(cfg.BaseURL, cfg.Token, l)
}
