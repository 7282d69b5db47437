package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Marco-XM/arixyDashboardBack/internal/config"
	"github.com/Marco-XM/arixyDashboardBack/internal/database"
	"github.com/Marco-XM/arixyDashboardBack/internal/database/models"
	"github.com/Marco-XM/arixyDashboardBack/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, func(role string) string) {
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "router_test.db")
	db, err := database.Initialize(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		os.Remove(dbPath)
	})

	cfg := &config.Config{
		JWTSecret: "router-test-secret",
		LogLevel:  "ERROR",
	}

	router, jwtManager := SetupRouter(db, cfg, storage.Disabled())

	tokenFor := func(role string) string {
		token, _, err := jwtManager.GenerateToken(1, "tester", role)
		require.NoError(t, err)
		return token
	}

	return router, db, tokenFor
}

func routeSet(router *gin.Engine) map[string]bool {
	routes := map[string]bool{}
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestRouterRegistersManagementRoutes(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	routes := routeSet(router)

	for _, route := range []string{
		"GET /api/events/count",
		"GET /api/cards/count",
		"GET /api/reports/count",
		"GET /api/blocked-dates/count",
		"PUT /api/cards/:id/details/:detailId",
		"GET /api/users/:id/validate",
		"GET /api/users/admins/count",
		"DELETE /api/users/admins/:id",
	} {
		assert.True(t, routes[route], "route not registered: %s", route)
	}
}

func TestCountEndpointsBehindAuth(t *testing.T) {
	router, db, tokenFor := setupTestRouter(t)

	require.NoError(t, db.Create(&models.Report{Name: "Jane", MobileNumber1: "0100000000"}).Error)

	// No token
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reports/count", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Authenticated
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/reports/count", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor("user"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestUserRoutesAreAdminOnly(t *testing.T) {
	router, _, tokenFor := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor("user"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor("admin"))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateUserIsPublic(t *testing.T) {
	router, db, _ := setupTestRouter(t)

	user := &models.User{
		Username:     "jane",
		Email:        "jane@example.com",
		PasswordHash: "irrelevant",
		Name:         "Jane",
		Role:         string(models.RoleAdmin),
	}
	require.NoError(t, db.Create(user).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/1/validate", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
}
