package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workaxis/hrms-backend-go/internal/handler/http/response"
	"github.com/workaxis/hrms-backend-go/internal/pkg/jwt"
)

type currentUserKey struct{}

// AuthRequired rejects requests without a verified access token and stores
// the token's user id for CurrentUser. It must run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.Unauthorized(w, "Missing access token")
			return
		}

		tokenType, ok := claims[jwt.ClaimType].(string)
		if !ok || tokenType != jwt.TokenTypeAccess {
			response.Unauthorized(w, "Invalid token type")
			return
		}
		userID, ok := claims[jwt.ClaimUserID].(string)
		if !ok || userID == "" {
			response.Unauthorized(w, "Token has no user")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCurrentUser(r.Context(), userID)))
	})
}

func WithCurrentUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, currentUserKey{}, userID)
}

// CurrentUser returns the authenticated user id, recorded in audit columns.
func CurrentUser(ctx context.Context) string {
	userID, _ := ctx.Value(currentUserKey{}).(string)
	return userID
}
