package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/pkg/logger"
)

type LikeHandler struct {
	svc service.LikeService
	l   logger.LoggerV1
}

func NewLikeHandler(svc service.LikeService, l logger.LoggerV1) *LikeHandler {
	return &LikeHandler{
		svc: svc,
		l:   l,
	}
}

func (h *LikeHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/likes")
	g.POST("/toggle", h.Toggle)
	g.GET("/mine", h.Mine)
}

type toggleLikeReq struct {
	PostID string `json:"postId"`
}

func (h *LikeHandler) Toggle(ctx *gin.Context) {
	var req toggleLikeReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	uid, ok := claimsUid(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	liked, cnt, err := h.svc.ToggleLike(ctx, uid, req.PostID)
	if err != nil {
		h.l.Error("切换点赞状态失败",
			logger.Error(err),
			logger.String("uid", uid),
			logger.String("postId", req.PostID))
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: gin.H{
			"liked":     liked,
			"likeCount": cnt,
		},
	})
}

// Mine 当前用户点赞过的帖子 id，前端加载的时候拉一次做本地缓存
func (h *LikeHandler) Mine(ctx *gin.Context) {
	uid, ok := claimsUid(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	ids, err := h.svc.GetLikedPostIDs(ctx, uid)
	if err != nil {
		writeErr(ctx, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: gin.H{
			"postIds": ids,
		},
	})
}
