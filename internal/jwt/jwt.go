package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/threadline-dev/threadline/internal/domain"
	internal_errors "github.com/threadline-dev/threadline/internal/errors"
	"github.com/threadline-dev/threadline/internal/logger"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["username"] = user.Username
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("can't sign token", "err", err)
		return "", fmt.Errorf("can't create token: %w", err)
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.UnauthorizedError{Reason: fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, &internal_errors.UnauthorizedError{Reason: "invalid token signature"}
	}

	if !token.Valid {
		return nil, &internal_errors.UnauthorizedError{Reason: "invalid access token"}
	}

	return token, nil
}
