package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eventlyhq/eventbackend/config"
	"github.com/eventlyhq/eventbackend/middleware"
	"github.com/eventlyhq/eventbackend/models"
	"github.com/eventlyhq/eventbackend/store"
	"github.com/eventlyhq/eventbackend/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTRefreshSecret: "test-refresh-secret",
		AccessTTL:        15 * time.Minute,
		RefreshTTL:       24 * time.Hour,
	}
}

type testEnv struct {
	router *gin.Engine
	users  *store.MemoryUserStore
	events *store.MemoryEventStore
	cfg    *config.Config
}

// newTestEnv wires the controllers exactly as main.go does, against
// in-memory stores.
func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	users := store.NewMemoryUserStore()
	events := store.NewMemoryEventStore()

	r := gin.New()
	api := r.Group("/api")
	api.POST("/user-signup", Signup(users, models.RoleUser))
	api.POST("/admin-signup", Signup(users, models.RoleAdmin))
	api.POST("/user-login", Login(users, models.RoleUser, cfg))
	api.POST("/admin-login", Login(users, models.RoleAdmin, cfg))
	api.POST("/token-refresh", Refresh(users, cfg))
	api.GET("/get-events", GetEvents(events))
	api.GET("/get-event/:id", GetEventDetails(events))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(users, cfg.JWTSecret))
	protected.POST("/create-event", CreateEvent(events, users))
	protected.GET("/my-events", MyEvents(events))

	return &testEnv{router: r, users: users, events: events, cfg: cfg}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	resp := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// seedAccount inserts a record directly and returns it with a valid access
// token, bypassing the signup handler.
func (e *testEnv) seedAccount(t *testing.T, name, email string, role models.Role) (*models.User, string) {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	_, err = e.users.Insert(context.Background(), user)
	require.NoError(t, err)

	token, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), e.cfg.JWTSecret, e.cfg.AccessTTL)
	require.NoError(t, err)
	return user, token
}

func galaFields() map[string]string {
	return map[string]string{
		"eventTitle":       "Gala",
		"eventVenue":       "Hall A",
		"eventStartDate":   "2025-06-01",
		"eventEndDate":     "2025-06-01",
		"eventStartTime":   "18:00",
		"eventEndTime":     "21:00",
		"eventCost":        "500",
		"eventDescription": "desc",
	}
}
