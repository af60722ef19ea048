package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSignup(t *testing.T) {
	r, _ := newTestServer(t)

	token, id := signupUser(t, r, "maxjung", "genna@gmail.com", "HASHED_PASSWORD")
	if token == "" {
		t.Error("Expected signup to auto-login and return a token")
	}
	if id == "" {
		t.Error("Expected signup response to contain the user id")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	r, _ := newTestServer(t)

	signupUser(t, r, "testuser", "test@test.com", "password")

	resp := performRequest(r, "POST", "/auth/signup", gin.H{
		"username": "testuser",
		"email":    "genna@gmail.com",
		"password": "password",
	}, "")
	if resp.Code != http.StatusBadRequest || !strings.Contains(resp.Body.String(), "username already taken") {
		t.Errorf("Expected 400 with 'username already taken', got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestSignupShortPassword(t *testing.T) {
	r, _ := newTestServer(t)

	resp := performRequest(r, "POST", "/auth/signup", gin.H{
		"username": "maxjung",
		"email":    "genna@gmail.com",
		"password": "five",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a password under 6 characters, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestLogin(t *testing.T) {
	r, _ := newTestServer(t)

	signupUser(t, r, "testuser", "test@test.com", "HASHED_PASSWORD")

	resp := performRequest(r, "POST", "/auth/login", gin.H{
		"username": "testuser",
		"password": "HASHED_PASSWORD",
	}, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "Hello, testuser!") {
		t.Errorf("Expected greeting in login response, got %s", resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "token") {
		t.Errorf("Expected token in login response, got %s", resp.Body.String())
	}
}

// Wrong password and unknown username return the same message so the
// response never reveals which part was wrong.
func TestLoginUniformFailure(t *testing.T) {
	r, _ := newTestServer(t)

	signupUser(t, r, "testuser", "test@test.com", "HASHED_PASSWORD")

	badPass := performRequest(r, "POST", "/auth/login", gin.H{
		"username": "testuser",
		"password": "INVALID_PASSWORD",
	}, "")
	badName := performRequest(r, "POST", "/auth/login", gin.H{
		"username": "wronguser",
		"password": "HASHED_PASSWORD",
	}, "")

	for _, resp := range []int{badPass.Code, badName.Code} {
		if resp != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", resp)
		}
	}
	if badPass.Body.String() != badName.Body.String() {
		t.Errorf("Expected identical failure responses, got %s vs %s",
			badPass.Body.String(), badName.Body.String())
	}
	if !strings.Contains(badPass.Body.String(), "invalid credentials") {
		t.Errorf("Expected 'invalid credentials', got %s", badPass.Body.String())
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	r, _ := newTestServer(t)

	token, _ := signupUser(t, r, "testuser", "test@test.com", "HASHED_PASSWORD")

	// The token works before logout...
	resp := performRequest(r, "GET", "/feed", nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200 before logout, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(r, "POST", "/auth/logout", nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("Expected 200 from logout, got %d: %s", resp.Code, resp.Body.String())
	}

	// ...and is rejected afterwards.
	resp = performRequest(r, "GET", "/feed", nil, token)
	if resp.Code != http.StatusUnauthorized || !strings.Contains(resp.Body.String(), "access unauthorized") {
		t.Errorf("Expected 401 with 'access unauthorized' after logout, got %d: %s", resp.Code, resp.Body.String())
	}
}
