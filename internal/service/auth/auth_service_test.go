package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/dioncoinz/sibw-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(domains string) *SessionService {
	return NewSessionService(&config.SecurityConfig{
		CookieSecret:        "test-secret",
		AllowedEmailDomains: domains,
		SessionMaxAgeHours:  12,
	})
}

func TestLoginAndValidate(t *testing.T) {
	svc := newTestSessionService("")

	token, err := svc.Login("Alice@Example.com")
	require.NoError(t, err)

	// 三段式：email|时间戳|签名
	parts := strings.Split(token, "|")
	require.Len(t, parts, 3)
	assert.Equal(t, "alice@example.com", parts[0])

	email, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestLoginEmptyEmail(t *testing.T) {
	svc := newTestSessionService("")

	_, err := svc.Login("")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Login("   ")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestLoginDomainAllowList(t *testing.T) {
	svc := newTestSessionService("example.com, other.org")

	_, err := svc.Login("user@example.com")
	assert.NoError(t, err)

	_, err = svc.Login("user@OTHER.ORG")
	assert.NoError(t, err)

	_, err = svc.Login("user@evil.com")
	assert.ErrorIs(t, err, ErrDomainNotAllowed)

	// 无 @ 的输入按空域名处理，同样不在允许列表
	_, err = svc.Login("nodomain")
	assert.ErrorIs(t, err, ErrDomainNotAllowed)
}

func TestLoginMissingSecret(t *testing.T) {
	svc := NewSessionService(&config.SecurityConfig{SessionMaxAgeHours: 12})

	_, err := svc.Login("user@example.com")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestValidateRejectsTampering(t *testing.T) {
	svc := newTestSessionService("")

	token, err := svc.Login("user@example.com")
	require.NoError(t, err)
	parts := strings.Split(token, "|")

	cases := map[string]string{
		"empty token":       "",
		"two parts":         parts[0] + "|" + parts[1],
		"four parts":        token + "|extra",
		"tampered email":    "other@example.com|" + parts[1] + "|" + parts[2],
		"tampered ts":       parts[0] + "|1|" + parts[2],
		"tampered sig":      parts[0] + "|" + parts[1] + "|deadbeef",
		"non-numeric ts":    parts[0] + "|notatime|" + parts[2],
		"email without at":  "userexample.com|" + parts[1] + "|" + parts[2],
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Validate(bad)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestValidateExpired(t *testing.T) {
	// 有效期 0 小时：任何已签发令牌都视为过期
	svc := NewSessionService(&config.SecurityConfig{
		CookieSecret:       "test-secret",
		SessionMaxAgeHours: 0,
	})

	token, err := svc.Login("user@example.com")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateDifferentSecret(t *testing.T) {
	issuer := newTestSessionService("")
	verifier := NewSessionService(&config.SecurityConfig{
		CookieSecret:       "another-secret",
		SessionMaxAgeHours: 12,
	})

	token, err := issuer.Login("user@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
