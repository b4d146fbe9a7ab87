//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"parkreserve/internal/domain/user"
	"parkreserve/internal/handler/middleware"
	"parkreserve/internal/pkg/jwt"
	"parkreserve/internal/usecase"
	"parkreserve/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("test-secret", time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	router := gin.New()
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String(), "role": string(role)})
	})
	router.GET("/admin", auth.RequireAuth(), auth.RequireRole(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	return router, svc
}

func TestRequireAuth(t *testing.T) {
	router, svc := setupAuthRouter(t)
	userID := uuid.New()

	t.Run("success: valid token populates the request context", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleDriver)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "driver", body["role"])
	})

	t.Run("error: 401 without Authorization header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("error: 401 for a garbage token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "not-a-token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("error: 401 for an expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(userID, user.RoleDriver)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRole(t *testing.T) {
	router, svc := setupAuthRouter(t)

	t.Run("success: admin passes the role gate", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, token)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("error: 403 for a driver on an admin route", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), user.RoleDriver)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}
