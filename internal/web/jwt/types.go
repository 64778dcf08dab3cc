package jwt

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// 签发在外部的身份提供方，我们只负责校验
// key 跟签发方共享
var AtKey = []byte("mLk6CswdUm75WKcbM68UQUuxVsHSpTCw")

type Handler interface {
	ExtractToken(ctx *gin.Context) string
	// CheckSession ssid 在不在黑名单里，退出登录的会话会被拉黑
	CheckSession(ctx *gin.Context, ssid string) error
}

type UserClaims struct {
	jwt.RegisteredClaims
	// Uid 内部稳定的用户标识，也就是 Users 表的记录 id
	Uid  string
	Ssid string
}
