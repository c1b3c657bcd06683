package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

// SessionClaims carries the identity claims minted at login. The JTI ties
// the token to its server-side session record.
type SessionClaims struct {
	UserID int64
	Name   string
	Email  string
	Role   string
	JTI    string
}

// GenerateToken generates a signed JWT for the given user.
func GenerateToken(user *models.User, cfg *models.Config) (token string, jti string, expiresAt int64, err error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt = expirationTime.Unix()
	jti = uuid.NewString()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.FullName(),
		"email":   user.Email,
		"role":    user.Role,
		"jti":     jti,
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", "", 0, err
	}

	return token, jti, expiresAt, nil
}

// ValidateToken validates a JWT and returns the session claims.
func ValidateToken(tokenString string, secret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing user_id claim")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return nil, fmt.Errorf("missing role claim")
	}
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	jti, _ := claims["jti"].(string)

	return &SessionClaims{
		UserID: int64(userID),
		Name:   name,
		Email:  email,
		Role:   role,
		JTI:    jti,
	}, nil
}
