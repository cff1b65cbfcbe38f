package handlers

import (
	"net/http"

	"github.com/yourusername/todo-backend/internal/logger"
	"github.com/yourusername/todo-backend/internal/middleware"
)

// Routes wires the HTTP surface. The rate limiter only guards the two
// unauthenticated endpoints and may be nil when redis is not configured.
func Routes(authH *AuthHandler, todoH *TodoHandler, authMW *middleware.AuthMiddleware, limiter *middleware.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", Health)

	mux.Handle("POST /signup", limited(limiter, authH.Signup))
	mux.Handle("POST /login", limited(limiter, authH.Login))

	mux.HandleFunc("POST /todos", authMW.RequireAuth(todoH.Create))
	mux.HandleFunc("GET /todos", authMW.RequireAuth(todoH.List))
	mux.HandleFunc("GET /todos/{id}", authMW.RequireAuth(todoH.Get))
	mux.HandleFunc("PUT /todos/{id}", authMW.RequireAuth(todoH.Replace))
	mux.HandleFunc("PATCH /todos/{id}", authMW.RequireAuth(todoH.Patch))
	mux.HandleFunc("DELETE /todos/{id}", authMW.RequireAuth(todoH.Delete))

	return middleware.RequestID(middleware.AccessLog(logger.New("http"), mux))
}

func limited(limiter *middleware.RateLimiter, h http.HandlerFunc) http.Handler {
	if limiter == nil {
		return h
	}
	return limiter.Middleware(h)
}
