package api

import (
	"net/http"
	"strings"

	"homebar/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	ownerClaimsContextKey = "owner-claims"
)

// bearerToken 从 Authorization 头中提取 Bearer Token
func bearerToken(c *gin.Context) (string, string) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return "", "缺少授权头"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "无效的授权头格式"
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", "缺少 Bearer Token"
	}
	return tokenString, ""
}

// OwnerMiddleware 店主认证中间件，未配置店主密码时直接放行
func (h *HTTPHandler) OwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.owner.Enabled() {
			c.Next()
			return
		}

		tokenString, problem := bearerToken(c)
		if problem != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: problem,
			})
			return
		}

		claims, err := h.owner.Authenticate(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("owner_token_rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeSessionExpired,
				Message: "Token 无效或已过期",
			})
			return
		}

		c.Set(ownerClaimsContextKey, claims)
		c.Next()
	}
}

// CurrentOwner 从上下文获取已认证的店主声明
func CurrentOwner(c *gin.Context) *auth.Claims {
	value, exists := c.Get(ownerClaimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
