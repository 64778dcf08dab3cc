//go:build wireinject

package main

import (
	"github.com/google/wire"
	rlock "github.com/gotomicro/redis-lock"
	"github.com/malk-tv/malk/internal/events"
	"github.com/malk-tv/malk/internal/events/consumer"
	"github.com/malk-tv/malk/internal/repository"
	"github.com/malk-tv/malk/internal/repository/cache"
	"github.com/malk-tv/malk/internal/repository/dao"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/internal/web"
	ijwt "github.com/malk-tv/malk/internal/web/jwt"
	"github.com/malk-tv/malk/ioc"
)

func InitApp() *App {
	wire.Build(
		// 最基础的第三方依赖
		ioc.InitLogger,
		ioc.InitRedis,
		ioc.InitKafka,
		ioc.InitSyncProducer,
		ioc.InitRecordStore,
		ioc.NewConsumers,
		rlock.NewClient,

		dao.NewStoreUserDAO,
		dao.NewStorePostDAO,
		dao.NewStoreNotificationDAO,

		cache.NewRedisFollowCache,
		cache.NewRedisPostCache,

		repository.NewCachedUserRepository,
		repository.NewCachedRelationshipRepository,
		repository.NewCachedPostRepository,
		repository.NewStoreNotificationRepository,

		events.NewSaramaProducer,
		consumer.NewNotificationEventConsumer,

		service.NewUserService,
		service.NewRelationshipService,
		service.NewLikeService,
		ioc.InitNotificationHandlers,
		service.NewNotificationService,
		service.NewDigestService,

		ioc.InitJobs,

		web.NewRelationshipHandler,
		web.NewLikeHandler,
		web.NewNotificationHandler,
		web.NewUserHandler,
		ijwt.NewRedisJWTHandler,
		ioc.InitMiddlewares,
		ioc.InitWebServer,

		wire.Struct(new(App), "*"),
	)
	return new(App)
}
