package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"harborhr/backend/internal/models"
	"harborhr/backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Setup: Initialize JWT with a test key before running tests
	os.Setenv("JWT_SECRET_KEY", "testsecretkeyforjwtauthentication")
	os.Setenv("JWT_TOKEN_LIFESPAN_HOURS", "1")
	config.LoadConfig() // Reler o ambiente: o init() do pacote rodou antes dos Setenv acima
	if err := InitializeJWT(); err != nil {
		panic("Failed to initialize JWT for testing: " + err.Error())
	}
	exitVal := m.Run()
	os.Unsetenv("JWT_SECRET_KEY")
	os.Unsetenv("JWT_TOKEN_LIFESPAN_HOURS")
	os.Exit(exitVal)
}

func TestGenerateToken(t *testing.T) {
	user := &models.User{
		ID:    42,
		Email: "test@example.com",
		Role:  models.RoleUser,
	}

	tokenString, err := GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, "harborhr", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(1*time.Hour), claims.ExpiresAt.Time, 5*time.Second) // Allow 5s clock skew
}

func TestGenerateToken_LifespanFromConfig(t *testing.T) {
	original := config.Cfg.JWTTokenLifespan
	t.Cleanup(func() { config.Cfg.JWTTokenLifespan = original })

	user := &models.User{ID: 3, Email: "lifespan@example.com", Role: models.RoleUser}

	config.Cfg.JWTTokenLifespan = 2 * time.Hour
	tokenString, err := GenerateToken(user)
	assert.NoError(t, err)
	claims, err := ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	// Lifespan zerado cai no default de 24 horas.
	config.Cfg.JWTTokenLifespan = 0
	tokenString, err = GenerateToken(user)
	assert.NoError(t, err)
	claims, err = ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	user := &models.User{ID: 7, Email: "valid@example.com", Role: models.RoleAdmin}
	tokenString, err := GenerateToken(user)
	assert.NoError(t, err)

	// Re-sign the same claims with a different key
	otherKey := []byte("a-completely-different-secret-key")
	claims := &Claims{
		UserID: 7,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(otherKey)
	assert.NoError(t, err)
	assert.NotEqual(t, tokenString, forged)

	_, err = ValidateToken(forged)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := &Claims{
		UserID: 9,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
	assert.NoError(t, err)

	_, err = ValidateToken(expired)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
			userID, _ := c.Get("userID")
			c.JSON(http.StatusOK, gin.H{"user_id": userID})
		})
		return r
	}

	t.Run("Missing authorization header", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		rr := httptest.NewRecorder()
		newRouter().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Malformed authorization header", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "NotBearer abc")
		rr := httptest.NewRecorder()
		newRouter().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid bearer token", func(t *testing.T) {
		user := &models.User{ID: 5, Email: "bearer@example.com", Role: models.RoleUser}
		token, err := GenerateToken(user)
		assert.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		newRouter().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
