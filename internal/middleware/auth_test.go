package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Church_Community/internal/model"
	"Church_Community/internal/pkg"
	"Church_Community/internal/repository/mysql"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gin.Engine, *pkg.TokenService, *mysql.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}))

	tokens, err := pkg.NewTokenService("test-signing-key", "HS256", 60)
	require.NoError(t, err)
	users := &mysql.UserRepository{DB: db}

	r := gin.New()
	r.GET("/me", Auth(tokens, users), func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "is_admin": user.IsAdmin})
	})
	r.GET("/admin", Auth(tokens, users), AdminOnly(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, tokens, users
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, tokens, users := setupAuthTest(t)

	admin := &model.User{Name: "A", Email: "a@example.com", Password: "x", IsAdmin: true}
	require.NoError(t, users.Create(admin))
	member := &model.User{Name: "B", Email: "b@example.com", Password: "x", IsAdmin: false}
	require.NoError(t, users.Create(member))

	adminToken, err := tokens.Issue(admin.ID)
	require.NoError(t, err)
	memberToken, err := tokens.Issue(member.ID)
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doGet(r, "/me", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doGet(r, "/me", "Bearer not-a-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stale token for deleted user", func(t *testing.T) {
		ghost := &model.User{Name: "G", Email: "g@example.com", Password: "x"}
		require.NoError(t, users.Create(ghost))
		ghostToken, err := tokens.Issue(ghost.ID)
		require.NoError(t, err)
		require.NoError(t, users.DB.Delete(&model.User{}, ghost.ID).Error)

		w := doGet(r, "/me", "Bearer "+ghostToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token resolves user", func(t *testing.T) {
		w := doGet(r, "/me", "Bearer "+memberToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_admin":false`)
	})

	t.Run("admin gate rejects member", func(t *testing.T) {
		w := doGet(r, "/admin", "Bearer "+memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin gate passes admin", func(t *testing.T) {
		w := doGet(r, "/admin", "Bearer "+adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
