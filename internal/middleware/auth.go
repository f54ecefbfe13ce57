package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
	jwt_internal "github.com/threadline-dev/threadline/internal/jwt"
	"github.com/threadline-dev/threadline/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a valid Bearer token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				utils.WriteError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return nil, &internal_errors.UnauthorizedError{Reason: "missing access token"}
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, &internal_errors.UnauthorizedError{Reason: "invalid token claims"}
	}
	uid, _ := claims["uid"].(string)
	username, _ := claims["username"].(string)
	if uid == "" {
		return nil, &internal_errors.UnauthorizedError{Reason: "invalid token claims"}
	}

	return &domain.User{Id: uid, Username: username}, nil
}

// GetUserFromContext returns the authenticated user, or nil when the
// request went through without NeedAuth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, _ := r.Context().Value(UserClaimsKey).(*domain.User)
	return user
}
