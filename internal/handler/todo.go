package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/drollins/taskbox/internal/auth"
	"github.com/drollins/taskbox/internal/model"
	"github.com/drollins/taskbox/internal/store"
	"github.com/drollins/taskbox/internal/websocket"
)

type TodoHandler struct {
	todoStore *store.TodoStore
	hub       *websocket.Hub
	logger    *slog.Logger
}

func NewTodoHandler(ts *store.TodoStore, hub *websocket.Hub, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{todoStore: ts, hub: hub, logger: logger}
}

func (h *TodoHandler) publish(userID int64, action string, todoID int64) {
	if h.hub != nil {
		h.hub.Publish(userID, websocket.NewEvent(action, todoID))
	}
}

type todoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}

	todo, err := h.todoStore.Create(userID, req.Title, req.Description)
	if err != nil {
		h.logger.Error("create todo", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create todo"})
		return
	}

	h.publish(userID, "created", todo.ID)

	writeJSON(w, http.StatusCreated, map[string]string{"message": "todo created successfully"})
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	todos, err := h.todoStore.ListByUser(userID)
	if err != nil {
		h.logger.Error("list todos", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch todos"})
		return
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	writeJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	todo, err := h.todoStore.GetByID(id, userID)
	if err != nil {
		h.logger.Error("get todo", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch todo"})
		return
	}
	if todo == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "todo not found"})
		return
	}
	writeJSON(w, http.StatusOK, todo)
}

// Update writes the new title and description to the caller's row. A miss
// (unknown id or another user's row) still reports success; only Get
// distinguishes missing rows.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req todoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.todoStore.Update(id, userID, req.Title, req.Description); err != nil {
		h.logger.Error("update todo", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update todo"})
		return
	}

	h.publish(userID, "updated", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "todo updated successfully"})
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.todoStore.Delete(id, userID); err != nil {
		h.logger.Error("delete todo", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete todo"})
		return
	}

	h.publish(userID, "deleted", id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "todo deleted successfully"})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
