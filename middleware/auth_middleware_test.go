package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventlyhq/eventbackend/models"
	"github.com/eventlyhq/eventbackend/store"
	"github.com/eventlyhq/eventbackend/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const testSecret = "test-secret"

func newTestRouter(users store.UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(users, testSecret), func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, identity)
	})
	return r
}

func seedUser(t *testing.T, users store.UserStore, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Name:      "Asha",
		Email:     string(role) + "@example.com",
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	_, err := users.Insert(context.Background(), user)
	require.NoError(t, err)
	return user
}

func TestResolvesIssuedTokenToStoredUser(t *testing.T) {
	users := store.NewMemoryUserStore()
	user := seedUser(t, users, models.RoleAdmin)

	token, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), testSecret, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newTestRouter(users).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID.Hex())
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	assert.Contains(t, w.Body.String(), `"name":"Asha"`)
}

func TestRejectsMissingHeader(t *testing.T) {
	users := store.NewMemoryUserStore()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	newTestRouter(users).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRejectsMalformedToken(t *testing.T) {
	users := store.NewMemoryUserStore()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	newTestRouter(users).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRejectsTokenSignedWithOtherSecret(t *testing.T) {
	users := store.NewMemoryUserStore()
	user := seedUser(t, users, models.RoleUser)

	token, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), "other-secret", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newTestRouter(users).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRejectsOrphanedToken(t *testing.T) {
	users := store.NewMemoryUserStore()

	// Cryptographically valid token whose subject was never stored.
	token, err := utils.GenerateAccessToken(bson.NewObjectID().Hex(), "ghost@example.com", "admin", testSecret, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newTestRouter(users).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRejectsExpiredToken(t *testing.T) {
	users := store.NewMemoryUserStore()
	user := seedUser(t, users, models.RoleUser)

	token, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), testSecret, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newTestRouter(users).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
