package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName carries the signed session id between requests.
const CookieName = "taller_session"

// Session is the typed payload kept server-side for a logged-in user.
type Session struct {
	UserID      uint   `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func (s Session) IsAdmin() bool {
	return s.Role == "admin"
}

func NewID() string {
	return uuid.NewString()
}

// ======================================================
// Manager — signs/verifies the session-id cookie
// ======================================================

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue wraps a session id into a signed token suitable for a cookie value.
func (m *Manager) Issue(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(m.ttl).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a cookie value and returns the session id inside it.
func (m *Manager) Parse(value string) (string, error) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return sid, nil
}
