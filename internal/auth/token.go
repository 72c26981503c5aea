package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier issues and checks HS256 session tokens.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) Verifier {
	return Verifier{secret: []byte(secret)}
}

// Issue signs a 24h session token for one admin user.
func (v Verifier) Issue(userID int64, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(v.secret)
}

// Resolve turns a raw Authorization header into a resolved state. A
// missing or malformed header is Unauthenticated, never an error: the
// guard only needs to know whether a session exists.
func (v Verifier) Resolve(authorization string) (State, Session) {
	raw := strings.TrimSpace(authorization)
	raw = strings.TrimPrefix(raw, "Bearer ")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return StateUnauthenticated, Session{}
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return StateUnauthenticated, Session{}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return StateUnauthenticated, Session{}
	}

	sess := Session{}
	if id, ok := claims["user_id"].(float64); ok {
		sess.UserID = int64(id)
	}
	if role, ok := claims["role"].(string); ok {
		sess.Role = role
	}
	return StateAuthenticated, sess
}
