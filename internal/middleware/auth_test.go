package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"serenai/internal/config"
	apperrors "serenai/internal/errors"
	"serenai/internal/models"
	"serenai/internal/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{
		JWTSecret:        "test-secret",
		JWTExpirationDur: time.Hour,
	})
	os.Exit(m.Run())
}

func testUser(id uint, email string) *models.User {
	user := &models.User{Email: email, IsActive: true}
	user.ID = id
	return user
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		token, err := GenerateToken(testUser(7, "user@example.com"))
		testutil.AssertNoError(t, err)

		claims, err := ValidateToken(token)
		testutil.AssertNoError(t, err)

		if claims.UserID != 7 {
			t.Errorf("expected user_id 7, got %d", claims.UserID)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("expected email claim, got %s", claims.Email)
		}
		if claims.Issuer != "serenai-api" {
			t.Errorf("expected issuer serenai-api, got %s", claims.Issuer)
		}
	})

	t.Run("expired_token", func(t *testing.T) {
		claims := &JWTClaims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(config.Get().JWTSecret))
		testutil.AssertNoError(t, err)

		_, err = ValidateToken(token)
		testutil.AssertAppError(t, err, apperrors.ErrTokenExpired.Code)
	})

	t.Run("wrong_signature", func(t *testing.T) {
		claims := &JWTClaims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("some-other-secret"))
		testutil.AssertNoError(t, err)

		_, err = ValidateToken(token)
		testutil.AssertAppError(t, err, apperrors.ErrInvalidToken.Code)
	})

	t.Run("garbage_token", func(t *testing.T) {
		_, err := ValidateToken("not.a.token")
		testutil.AssertAppError(t, err, apperrors.ErrInvalidToken.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	setupRouter := func() *gin.Engine {
		router := gin.New()
		router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
			userID := c.GetUint("userID")
			c.JSON(http.StatusOK, gin.H{"user_id": userID})
		})
		return router
	}

	t.Run("valid_token_sets_user", func(t *testing.T) {
		token, err := GenerateToken(testUser(42, "user@example.com"))
		testutil.AssertNoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing_header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", w.Code)
		}
	})

	t.Run("malformed_header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", w.Code)
		}
	})

	t.Run("invalid_token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", w.Code)
		}
	})
}
