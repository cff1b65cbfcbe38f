package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yourusername/todo-backend/internal/auth"
	"github.com/yourusername/todo-backend/internal/middleware"
	"github.com/yourusername/todo-backend/internal/storage"
)

const testSecret = "test-secret-key"

type testEnv struct {
	handler http.Handler
	users   *storage.MemoryUserStorage
	tokens  *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("LOG_LEVEL", "FATAL")

	users := storage.NewMemoryUserStorage()
	todos := storage.NewMemoryTodoStorage()
	tokens := auth.NewTokenManager(testSecret)

	authH := NewAuthHandler(users, tokens)
	todoH := NewTodoHandler(todos)
	authMW := middleware.NewAuthMiddleware(tokens, users)

	return &testEnv{
		handler: Routes(authH, todoH, authMW, nil),
		users:   users,
		tokens:  tokens,
	}
}

// do performs a request against the routed handler. body may be a raw string
// or any value to marshal as JSON.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// foreignToken is well-formed but signed with a secret this server never held.
func foreignToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewTokenManager("some-other-secret").GenerateToken(1)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func (e *testEnv) signupAndLogin(t *testing.T, name, email, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/signup", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = e.do(t, http.MethodPost, "/login", "", map[string]string{
		"email": email, "password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decodeBody(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("expected non-empty token")
	}
	return resp.Token
}
