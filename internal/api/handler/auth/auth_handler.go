package auth

import (
	"errors"
	"net/http"

	"github.com/dioncoinz/sibw-backend/internal/model"
	authservice "github.com/dioncoinz/sibw-backend/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// SessionCookie 会话 Cookie 名称
const SessionCookie = "sibw_session"

// AuthHandler 登录处理器
type AuthHandler struct {
	sessions *authservice.SessionService
}

// NewAuthHandler 创建登录处理器
func NewAuthHandler(sessions *authservice.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email string `json:"email"`
}

// Login 登录：校验邮箱域名，签发 HMAC 会话令牌并写入 Cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandleError(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	token, err := h.sessions.Login(req.Email)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailRequired):
			model.HandleError(c, http.StatusBadRequest, err)
		case errors.Is(err, authservice.ErrDomainNotAllowed):
			model.HandleError(c, http.StatusForbidden, err)
		default:
			// 密钥未配置属于部署错误
			model.HandleError(c, http.StatusInternalServerError, err)
		}
		return
	}

	maxAge := int(h.sessions.MaxAge().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, model.Success(nil))
}

// Logout 登出：清除会话 Cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, model.Success(nil))
}
