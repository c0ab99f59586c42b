package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dioncoinz/sibw-backend/pkg/config"
)

var (
	// ErrMissingSecret 未配置签名密钥（部署错误，登录返回 500）
	ErrMissingSecret = errors.New("cookie secret is not configured")
	// ErrEmailRequired 邮箱为空
	ErrEmailRequired = errors.New("email required")
	// ErrDomainNotAllowed 邮箱域名不在允许列表
	ErrDomainNotAllowed = errors.New("email domain not allowed")
	// ErrInvalidToken 令牌格式错误、签名不匹配或已过期
	ErrInvalidToken = errors.New("invalid or expired session token")
)

// SessionService 会话服务
// 令牌格式：email|unix毫秒时间戳|hex(hmac-sha256(email|时间戳, secret))
type SessionService struct {
	secret         []byte
	allowedDomains []string
	maxAge         time.Duration
}

// NewSessionService 创建会话服务
func NewSessionService(cfg *config.SecurityConfig) *SessionService {
	return &SessionService{
		secret:         []byte(cfg.CookieSecret),
		allowedDomains: cfg.Domains(),
		maxAge:         time.Duration(cfg.SessionMaxAgeHours) * time.Hour,
	}
}

// MaxAge 会话有效期
func (s *SessionService) MaxAge() time.Duration {
	return s.maxAge
}

// Login 校验邮箱域名并签发会话令牌
func (s *SessionService) Login(email string) (string, error) {
	cleaned := strings.ToLower(strings.TrimSpace(email))
	if cleaned == "" {
		return "", ErrEmailRequired
	}

	domain := ""
	if at := strings.LastIndex(cleaned, "@"); at >= 0 {
		domain = cleaned[at+1:]
	}

	// 允许列表为空时放行所有域名
	if len(s.allowedDomains) > 0 && !contains(s.allowedDomains, domain) {
		return "", fmt.Errorf("%w (%s)", ErrDomainNotAllowed, domain)
	}

	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	base := cleaned + "|" + ts
	return base + "|" + s.sign(base), nil
}

// Validate 校验令牌并返回其中的邮箱
// 要求：三段式格式、时间戳可解析、未过期、签名重算一致
func (s *SessionService) Validate(token string) (string, error) {
	if token == "" || len(s.secret) == 0 {
		return "", ErrInvalidToken
	}

	parts := strings.Split(token, "|")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}

	email, tsStr, sig := parts[0], parts[1], parts[2]
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidToken
	}

	ts, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	age := time.Since(time.UnixMilli(ts))
	if age < 0 || age > s.maxAge {
		return "", ErrInvalidToken
	}

	expected := s.sign(email + "|" + tsStr)
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return "", ErrInvalidToken
	}

	return email, nil
}

func (s *SessionService) sign(message string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
