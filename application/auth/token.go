package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
)

// tokenClaims is the JWT payload. Subject carries the user id; Name is a
// snapshot used to fill denormalized owner fields without a user lookup.
// Type distinguishes single-purpose tokens (password reset) from sessions.
type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

func (s *authAppImpl) generateToken(user *model.UserEntity, tokenType string, expiresIn time.Duration) (string, error) {
	claims := tokenClaims{
		Email: user.Email,
		Name:  user.Name,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *authAppImpl) parseToken(tokenString string) (*tokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// ValidateToken verifies a session bearer token and returns the caller
// identity. Single-purpose tokens (e.g. reset) are rejected here.
func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != constant.TokenTypeSession {
		return nil, fmt.Errorf("token is not a session token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	return &model.Identity{
		UserID: userID,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}
