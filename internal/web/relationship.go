package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malk-tv/malk/internal/service"
	"github.com/malk-tv/malk/pkg/logger"
)

type RelationshipHandler struct {
	svc service.RelationshipService
	l   logger.LoggerV1
}

func NewRelationshipHandler(svc service.RelationshipService, l logger.LoggerV1) *RelationshipHandler {
	return &RelationshipHandler{
		svc: svc,
		l:   l,
	}
}

func (h *RelationshipHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/relationships")
	g.POST("/follow", h.ToggleFollow)
	g.GET("/following", h.Following)
	g.GET("/followers", h.Followers)
	g.GET("/statics", h.Statics)
}

type toggleFollowReq struct {
	FolloweeID string `json:"followeeId"`
}

func (h *RelationshipHandler) ToggleFollow(ctx *gin.Context) {
	var req toggleFollowReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	uid, ok := claimsUid(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	// 调用方不指定目标状态，只给操作者和目标，最终状态由存储里的状态决定
	following, err := h.svc.ToggleFollow(ctx, uid, req.FolloweeID)
	if err != nil {
		h.l.Error("切换关注状态失败",
			logger.Error(err),
			logger.String("follower", uid),
			logger.String("followee", req.FolloweeID))
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: gin.H{
			"following": following,
		},
	})
}

func (h *RelationshipHandler) Following(ctx *gin.Context) {
	h.listEdges(ctx, h.svc.GetFollowing)
}

func (h *RelationshipHandler) Followers(ctx *gin.Context) {
	h.listEdges(ctx, h.svc.GetFollowers)
}

func (h *RelationshipHandler) listEdges(ctx *gin.Context,
	fn func(ctx context.Context, uid string) ([]string, error)) {
	uid := ctx.Query("user")
	if uid == "" {
		// 不传就看自己的
		var ok bool
		uid, ok = claimsUid(ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
	}
	ids, err := fn(ctx, uid)
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
			"userIds": ids,
		},
	})
}

func (h *RelationshipHandler) Statics(ctx *gin.Context) {
	uid := ctx.Query("user")
	if uid == "" {
		var ok bool
		uid, ok = claimsUid(ctx)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
	}
	statics, err := h.svc.GetFollowStatics(ctx, uid)
	if err != nil {
		writeErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: gin.H{
			"followers": statics.Followers,
			"followees": statics.Followees,
		},
	})
}
