package http

import (
	"fmt"
	"strings"

	"luggage/internal/core/ports"
	"luggage/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var ErrNoToken = fmt.Errorf("%w: no token provided", errs.ErrNotAuthenticated)

// Authenticate resolves an optional bearer token into a principal. It never
// rejects a request; handlers decide whether a principal is required.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, ok := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if ok {
				if principal, err := verifier.Verify(token); err == nil {
					ctx.Set(principalKey, principal)
				} else {
					ctx.Set(principalKey, err)
				}
			}
			return next(ctx)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// PrincipalFrom returns the caller when a valid token was presented.
func PrincipalFrom(ctx echo.Context) (ports.Principal, bool) {
	p, ok := ctx.Get(principalKey).(ports.Principal)
	return p, ok
}

// RequirePrincipal fails with errs.ErrNotAuthenticated when no valid token
// was presented.
func RequirePrincipal(ctx echo.Context) (ports.Principal, error) {
	switch v := ctx.Get(principalKey).(type) {
	case ports.Principal:
		return v, nil
	case error:
		return ports.Principal{}, v
	default:
		return ports.Principal{}, ErrNoToken
	}
}
