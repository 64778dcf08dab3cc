package ioc

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/malk-tv/malk/internal/web"
	ijwt "github.com/malk-tv/malk/internal/web/jwt"
	"github.com/malk-tv/malk/internal/web/middleware"
	"github.com/malk-tv/malk/pkg/ginx/middlewares/metric"
	"github.com/redis/go-redis/v9"
)

func InitWebServer(middlewares []gin.HandlerFunc,
	relHdl *web.RelationshipHandler,
	likeHdl *web.LikeHandler,
	notifHdl *web.NotificationHandler,
	userHdl *web.UserHandler) *gin.Engine {
	server := gin.Default()
	server.Use(middlewares...)
	relHdl.RegisterRoutes(server)
	likeHdl.RegisterRoutes(server)
	notifHdl.RegisterRoutes(server)
	userHdl.RegisterRoutes(server)
	return server
}

func InitMiddlewares(redisClient redis.Cmdable, jwtHdl ijwt.Handler) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		corsHdl(),
		metric.NewBuilder("malk", "web",
			"gin_http", "统计 HTTP 接口", "malk-1").Build(),
		middleware.NewLoginJWTMiddlewareBuilder(jwtHdl).
			IgnorePaths("/metrics").
			Build(),
	}
}

func corsHdl() gin.HandlerFunc {
	return cors.New(cors.Config{
		// 要带用户认证信息
		AllowCredentials: true,
		AllowHeaders:     []string{"content-type", "Authorization"},
		ExposeHeaders:    []string{"x-jwt-token"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "malk.tv")
		},
		MaxAge: 12 * time.Hour,
	})
}
