package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/maxjung/warbler/internal/database"
	"github.com/maxjung/warbler/internal/middleware"
	"github.com/maxjung/warbler/internal/services"
	"github.com/maxjung/warbler/pkg/auth"
)

// newTestServer wires the full route table over an in-memory sqlite
// database and a miniredis-backed blacklist, mirroring cmd/server.
func newTestServer(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	d := database.NewDatabase(db)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)

	authService := services.NewAuthService(d)
	authH := NewAuthHandler(authService, jwtMgr, rdb)
	userH := NewUserHandler(d)
	messageH := NewMessageHandler(d)

	r := gin.New()

	r.POST("/auth/signup", authH.Signup)
	r.POST("/auth/login", authH.Login)
	r.GET("/users/:id", userH.GetUser)
	r.GET("/users/search", userH.SearchUsers)
	r.GET("/messages/:id", messageH.GetMessage)

	api := r.Group("/")
	api.Use(middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.POST("/auth/logout", authH.Logout)
		api.GET("/feed", messageH.Feed)
		api.POST("/messages", messageH.CreateMessage)
		api.DELETE("/messages/:id", messageH.DeleteMessage)
		api.POST("/messages/:id/like", messageH.LikeMessage)
		api.GET("/users/:id/followers", userH.Followers)
		api.GET("/users/:id/following", userH.Following)
		api.GET("/users/:id/likes", userH.Likes)
		api.POST("/users/:id/follow", userH.Follow)
		api.POST("/users/:id/unfollow", userH.Unfollow)
		api.PATCH("/users/me", userH.UpdateMe)
		api.DELETE("/users/me", userH.DeleteMe)
	}

	return r, d
}

// performRequest sends a JSON request through the router, attaching the
// bearer token when one is given.
func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type signupResult struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

// signupUser registers a user through the API and returns the issued
// token and the new user's id.
func signupUser(t *testing.T, r *gin.Engine, username, email, password string) (string, string) {
	t.Helper()

	resp := performRequest(r, "POST", "/auth/signup", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup of %s failed with %d: %s", username, resp.Code, resp.Body.String())
	}

	var result signupResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode signup response: %v", err)
	}
	return result.Token, result.User.ID
}
