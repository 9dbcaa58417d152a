// Package auth holds the shared-passcode admin gate. The legacy client
// compared a hard-coded cleartext passcode in the browser; here the secret
// comes from configuration and the comparison is constant-time, but there is
// still deliberately no lockout, audit trail or persistent session model.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/veslaw/casefolio/internal/apperr"
)

type Gate struct {
	passcode string

	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewGate(passcode string) *Gate {
	return &Gate{
		passcode: passcode,
		tokens:   make(map[string]struct{}),
	}
}

// Authenticate checks the passcode and, on success, issues an opaque bearer
// token valid for the lifetime of the process. Failure carries no lockout.
func (g *Gate) Authenticate(passcode string) (string, bool) {
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(g.passcode)) != 1 {
		return "", false
	}

	token := uuid.NewString()
	g.mu.Lock()
	g.tokens[token] = struct{}{}
	g.mu.Unlock()
	return token, true
}

func (g *Gate) Valid(token string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.tokens[token]
	return ok
}

// Middleware guards the admin write routes with a bearer token check.
func (g *Gate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" || !g.Valid(token) {
				return apperr.NewUnauthorized("admin token missing or invalid")
			}
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
