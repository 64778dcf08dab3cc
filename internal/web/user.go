package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malk-tv/malk/internal/domain"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/pkg/logger"
)

type UserHandler struct {
	svc service.UserService
	l   logger.LoggerV1
}

func NewUserHandler(svc service.UserService, l logger.LoggerV1) *UserHandler {
	return &UserHandler{
		svc: svc,
		l:   l,
	}
}

func (h *UserHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/users")
	g.POST("", h.Create)
	g.GET("/resolve", h.Resolve)
}

type createUserReq struct {
	Nickname string `json:"nickname"`
}

// Create 身份提供方首次解析成功之后过来建档
func (h *UserHandler) Create(ctx *gin.Context) {
	var req createUserReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	u, err := h.svc.Create(ctx, domain.User{
		Nickname: req.Nickname,
	})
	if err != nil {
		h.l.Error("创建用户失败", logger.Error(err))
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: gin.H{
			"id": u.ID,
		},
	})
}

// Resolve 优先按规范 id，没有 id 才按昵称兜底
func (h *UserHandler) Resolve(ctx *gin.Context) {
	u, err := h.svc.Resolve(ctx, ctx.Query("id"), ctx.Query("nickname"))
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: gin.H{
			"id":       u.ID,
			"nickname": u.Nickname,
		},
	})
}
