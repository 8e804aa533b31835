// Package token issues and verifies the signed bearer tokens used for
// login sessions and password resets.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token is past its validity window.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned when a token is malformed, carries an
	// unknown key id, or fails signature verification.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Manager signs and verifies HS256 tokens. The signing key is selected by
// key id so that secrets can be rotated: new tokens are signed with the
// active key while tokens signed with an older key stay verifiable until
// they expire, as long as the old key remains in the map.
type Manager struct {
	keys      map[string][]byte
	activeKID string
	ttl       time.Duration
}

// NewManager creates a Manager from a kid to secret map, the key id used
// for signing, and the token lifetime.
func NewManager(keys map[string]string, activeKID string, ttl time.Duration) (*Manager, error) {
	if len(keys) == 0 {
		return nil, errors.New("at least one signing key is required")
	}
	if _, ok := keys[activeKID]; !ok {
		return nil, fmt.Errorf("active key id %q not found in key map", activeKID)
	}
	m := &Manager{
		keys:      make(map[string][]byte, len(keys)),
		activeKID: activeKID,
		ttl:       ttl,
	}
	for kid, secret := range keys {
		m.keys[kid] = []byte(secret)
	}
	return m, nil
}

// Issue creates a signed token for the given user with an absolute expiry
// of now plus the configured lifetime.
func (m *Manager) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = m.activeKID

	signed, err := token.SignedString(m.keys[m.activeKID])
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the user id it was
// issued for. Expired tokens yield ErrTokenExpired; every other failure
// (bad signature, wrong algorithm, unknown kid, missing subject) yields
// ErrTokenInvalid.
func (m *Manager) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.lookupKey(t)
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok || sub <= 0 {
		return 0, ErrTokenInvalid
	}
	return uint(sub), nil
}

// lookupKey resolves the verification secret from the token's kid header.
// Tokens without a kid fall back to the active key so that tokens issued
// before rotation support was added still verify.
func (m *Manager) lookupKey(t *jwt.Token) (interface{}, error) {
	kid, ok := t.Header["kid"].(string)
	if !ok {
		return m.keys[m.activeKID], nil
	}
	secret, ok := m.keys[kid]
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return secret, nil
}
