package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malk-tv/malk/internal/domain"
	ijwt "github.com/malk-tv/malk/internal/web/jwt"
)

type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// writeErr 错误分类到响应的统一映射
// 校验和不存在是终态，直接告诉调用方；
// 上游不可用（重试已经在下面做完了）只给一个"稍后再试"
func writeErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, Result{Code: 4, Msg: "非法输入"})
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, Result{Code: 4, Msg: "数据不存在"})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, Result{Code: 5, Msg: "系统繁忙，稍后再试"})
	default:
		ctx.JSON(http.StatusInternalServerError, Result{Code: 5, Msg: "系统错误"})
	}
}

// claimsUid 登录校验中间件塞进来的用户 id
func claimsUid(ctx *gin.Context) (string, bool) {
	val, ok := ctx.Get("claims")
	if !ok {
		return "", false
	}
	claims, ok := val.(*ijwt.UserClaims)
	if !ok || claims.Uid == "" {
		return "", false
	}
	return claims.Uid, true
}
