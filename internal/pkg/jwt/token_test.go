package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rioatrato/transchoco/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "transchoco-test",
		},
	}
}

func testUser() *models.User {
	return &models.User{
		ID:        42,
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@x.com",
		Role:      models.RolePassenger,
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
	}{
		{
			name: "Passenger token",
			user: testUser(),
		},
		{
			name: "Driver token",
			user: &models.User{ID: 7, FirstName: "Luis", LastName: "Mena", Email: "luis@x.com", Role: models.RoleDriver},
		},
		{
			name: "Admin token",
			user: &models.User{ID: 1, FirstName: "Root", LastName: "Admin", Email: "admin@x.com", Role: models.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getTestConfig()
			tokenString, jti, expiresAt, err := GenerateToken(tt.user, cfg)

			assert.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.NotEmpty(t, jti)
			assert.Greater(t, expiresAt, time.Now().Unix())

			// Verify token structure
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)

			assert.Equal(t, float64(tt.user.ID), claims["user_id"])
			assert.Equal(t, tt.user.FullName(), claims["name"])
			assert.Equal(t, tt.user.Email, claims["email"])
			assert.Equal(t, tt.user.Role, claims["role"])
			assert.Equal(t, jti, claims["jti"])
			assert.Equal(t, cfg.JWT.Issuer, claims["iss"])
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	user := testUser()

	tokenString, jti, _, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	t.Run("Valid token", func(t *testing.T) {
		claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "Ana Ruiz", claims.Name)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, models.RolePassenger, claims.Role)
		assert.Equal(t, jti, claims.JTI)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		claims, err := ValidateToken(tokenString, "another-secret")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Garbage token", func(t *testing.T) {
		claims, err := ValidateToken("not.a.token", cfg.JWT.Secret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := getTestConfig()
		expired.JWT.Expiration = -1
		tokenString, _, _, err := GenerateToken(user, expired)
		require.NoError(t, err)

		claims, err := ValidateToken(tokenString, expired.JWT.Secret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Unsigned algorithm rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"user_id": float64(user.ID),
			"role":    user.Role,
		})
		raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := ValidateToken(raw, cfg.JWT.Secret)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
