package transport

import (
	"net/http"
	"strings"

	"github.com/expenzo/expenzo-backend/application/auth"
	"github.com/expenzo/expenzo-backend/constant"
	utilsContext "github.com/expenzo/expenzo-backend/utils/context"
	"github.com/expenzo/expenzo-backend/utils/errors"
)

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// RequireAuth rejects requests without a valid session token and attaches
// the caller identity to the request context.
func RequireAuth(authApp auth.AuthApp, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
			return
		}

		identity, err := authApp.ValidateToken(r.Context(), token)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
			return
		}

		ctx := utilsContext.WithIdentity(r.Context(), *identity)
		next(w, r.WithContext(ctx))
	}
}

// OptionalAuth attaches the caller identity when a valid token is present
// and lets the request through anonymously otherwise. A malformed or expired
// token is treated the same as no token.
func OptionalAuth(authApp auth.AuthApp, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next(w, r)
			return
		}

		identity, err := authApp.ValidateToken(r.Context(), token)
		if err != nil {
			next(w, r)
			return
		}

		ctx := utilsContext.WithIdentity(r.Context(), *identity)
		next(w, r.WithContext(ctx))
	}
}
