package middleware

import (
	"net/http"
	"strings"

	handlerauth "github.com/dioncoinz/sibw-backend/internal/api/handler/auth"
	"github.com/dioncoinz/sibw-backend/internal/model"
	authservice "github.com/dioncoinz/sibw-backend/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware 会话认证中间件
// 优先读会话 Cookie，也支持 Authorization: Bearer <token>（API 调用方使用）
// 校验通过后把邮箱写入请求上下文，后续 handler 以普通值读取
func SessionMiddleware(sessions *authservice.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(handlerauth.SessionCookie)
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				token = strings.TrimPrefix(authHeader, "Bearer ")
				if token == authHeader {
					c.JSON(http.StatusUnauthorized, model.Error(401, "authorization header must start with 'Bearer '"))
					c.Abort()
					return
				}
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, model.Error(401, "missing session cookie or Authorization header"))
			c.Abort()
			return
		}

		email, err := sessions.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, model.Error(401, "session invalid or expired"))
			c.Abort()
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
