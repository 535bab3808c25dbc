package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/drollins/taskbox/internal/handler"
	"github.com/drollins/taskbox/internal/middleware"
	"github.com/drollins/taskbox/internal/store"
	ws "github.com/drollins/taskbox/internal/websocket"
)

type Server struct {
	db     *sql.DB
	hub    *ws.Hub
	authH  *handler.AuthHandler
	todoH  *handler.TodoHandler
	secret []byte
	logger *slog.Logger
}

func New(db *sql.DB, secret []byte, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	userStore := store.NewUserStore(db)
	todoStore := store.NewTodoStore(db)

	return &Server{
		db:     db,
		hub:    hub,
		authH:  handler.NewAuthHandler(userStore, secret, logger.With("component", "auth")),
		todoH:  handler.NewTodoHandler(todoStore, hub, logger.With("component", "todo")),
		secret: secret,
		logger: logger,
	}
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /signup", s.authH.Signup)
	outerMux.HandleFunc("POST /login", s.authH.Login)
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.secret)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /todo", s.todoH.Create)
	mux.HandleFunc("GET /todos", s.todoH.List)
	mux.HandleFunc("GET /todos/{id}", s.todoH.Get)
	mux.HandleFunc("PUT /todos/{id}", s.todoH.Update)
	mux.HandleFunc("DELETE /todos/{id}", s.todoH.Delete)

	// WebSocket change feed
	mux.HandleFunc("GET /ws", ws.Handle(s.hub, s.logger.With("component", "websocket")))
}
