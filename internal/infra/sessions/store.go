package sessions

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"hr-portal/internal/domain/session"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession = errors.New("no session")
	ErrSignedOut = errors.New("session signed out")
)

// Store reads identity-service session tokens and tracks which of them have
// been signed out. Tokens are HMAC-signed JWTs whose claims carry the user's
// identity, granted permission strings, and lifetime. The guard and the
// lifecycle monitor only ever consume sessions through here.
type Store struct {
	secret []byte

	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewStore(secret string) *Store {
	return &Store{
		secret:  []byte(secret),
		revoked: make(map[string]time.Time),
	}
}

// Current resolves a raw token into a session. Revoked, malformed and
// expired tokens all come back as errors; callers treat every error as
// "not signed in".
func (st *Store) Current(tokenString string) (*session.Session, error) {
	if tokenString == "" {
		return nil, ErrNoSession
	}

	st.mu.RLock()
	_, gone := st.revoked[tokenString]
	st.mu.RUnlock()
	if gone {
		return nil, ErrSignedOut
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return st.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}

	s := &session.Session{Token: tokenString}

	if sub, ok := claims["sub"].(string); ok {
		s.Identity.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		s.Identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		s.Identity.Name = name
	}
	if tenant, ok := claims["tenant_id"].(string); ok {
		s.Identity.TenantID = tenant
	}
	if perms, ok := claims["permissions"].([]interface{}); ok {
		for _, p := range perms {
			if str, ok := p.(string); ok {
				s.Permissions = append(s.Permissions, str)
			}
		}
	}

	if iat, ok := claims["iat"].(float64); ok {
		s.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := claims["exp"].(float64); ok {
		left := int64(exp) - time.Now().Unix()
		if left <= 0 {
			return nil, ErrNoSession
		}
		s.ExpiresIn = left
	}

	return s, nil
}

// SignOut revokes a token. Idempotent; revoking an unknown token is fine.
func (st *Store) SignOut(tokenString string) {
	if tokenString == "" {
		return
	}

	now := time.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.revoked[tokenString] = now

	// Drop revocations older than a day; the tokens behind them have long
	// since expired on their own.
	for tok, at := range st.revoked {
		if now.Sub(at) > 24*time.Hour {
			delete(st.revoked, tok)
		}
	}
}
