package web

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/pkg/logger"
)

type NotificationHandler struct {
	svc service.NotificationService
	l   logger.LoggerV1
}

func NewNotificationHandler(svc service.NotificationService, l logger.LoggerV1) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
		l:   l,
	}
}

func (h *NotificationHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/notifications")
	g.GET("", h.List)
	g.PATCH("/:id/read", h.MarkRead)
}

type notificationVO struct {
	ID      string            `json:"id"`
	Kind    string            `json:"kind"`
	Payload map[string]string `json:"payload"`
	Read    bool              `json:"read"`
	Ctime   int64             `json:"ctime"`
}

// List 只能看自己的，收件人永远取自登录态
func (h *NotificationHandler) List(ctx *gin.Context) {
	uid, ok := claimsUid(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	onlyUnread := ctx.Query("onlyUnread") == "true"
	ns, err := h.svc.List(ctx, uid, onlyUnread)
	if err != nil {
		writeErr(ctx, err)
		return
	}
	vos := slice.Map(ns, func(idx int, src domain.Notification) notificationVO {
		return notificationVO{
			ID:      src.ID,
			Kind:    string(src.Kind),
			Payload: src.Payload,
			Read:    src.Read,
			Ctime:   src.Ctime.UnixMilli(),
		}
	})
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: gin.H{
			"notifications": vos,
		},
	})
}

func (h *NotificationHandler) MarkRead(ctx *gin.Context) {
	uid, ok := claimsUid(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id := ctx.Param("id")
	err := h.svc.MarkRead(ctx, uid, id)
	if err != nil {
		h.l.Error("标记已读失败",
			logger.Error(err),
			logger.String("uid", uid),
			logger.String("id", id))
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: gin.H{
			"ok": true,
		},
	})
}
