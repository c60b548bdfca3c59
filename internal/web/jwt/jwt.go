package jwt

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go-email-template/internal/errs"
)

const UserIDName = "user_id"

// Builder 管理后台接口的JWT鉴权中间件。
// 权限判定在上游完成，这里只验签并把用户标识放进请求上下文。
type Builder struct {
	key string
}

func NewBuilder(key string) *Builder {
	return &Builder{key: key}
}

func (b *Builder) Decode(tokenString string) (jwt.MapClaims, error) {
	// 去除可能的 Bearer 前缀（兼容不同客户端实现）
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return []byte(b.key), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: 令牌解析失败: %w", errs.ErrUserUnauthorized, err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("%w: 无效令牌", errs.ErrUserUnauthorized)
}

func (b *Builder) Encode(customClaims jwt.MapClaims) (string, error) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"iss": "email-template",
	}

	// 合并用户自定义声明（覆盖默认声明）
	for k, v := range customClaims {
		claims[k] = v
	}

	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour * 24).Unix() // 默认24小时过期
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(b.key))
}

// Middleware 验证 Authorization 头里的令牌，失败直接 401
func (b *Builder) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, err := b.Decode(authHeader)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if v, ok := claims[UserIDName]; ok {
			ctx.Set(UserIDName, v)
		}
		ctx.Next()
	}
}
