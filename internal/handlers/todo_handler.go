package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/yourusername/todo-backend/internal/logger"
	"github.com/yourusername/todo-backend/internal/middleware"
	"github.com/yourusername/todo-backend/internal/models"
	"github.com/yourusername/todo-backend/internal/storage"
	"github.com/yourusername/todo-backend/internal/validation"
)

type TodoHandler struct {
	todos storage.TodoStore
	log   *logger.Logger
}

func NewTodoHandler(todos storage.TodoStore) *TodoHandler {
	return &TodoHandler{
		todos: todos,
		log:   logger.New("todo-handler"),
	}
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var in models.TodoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateTodoInput(&in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.todos.CreateTodo(r.Context(), user.ID, &in)
	if err != nil {
		h.log.Error("failed to create todo: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	todos, err := h.todos.ListTodos(r.Context(), user.ID)
	if err != nil {
		h.log.Error("failed to list todos: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if todos == nil {
		todos = []*models.Todo{}
	}

	respondJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, ok := todoID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	todo, err := h.todos.GetTodo(r.Context(), user.ID, id)
	if err != nil {
		h.log.Error("failed to get todo: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if todo == nil {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Replace(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, ok := todoID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	var in models.TodoInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateTodoInput(&in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.todos.ReplaceTodo(r.Context(), user.ID, id, &in)
	if err != nil {
		h.log.Error("failed to replace todo: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if todo == nil {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Patch(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, ok := todoID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	var patch models.TodoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateTodoPatch(&patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	todo, err := h.todos.PatchTodo(r.Context(), user.ID, id, &patch)
	if err != nil {
		h.log.Error("failed to patch todo: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if todo == nil {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, ok := todoID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	deleted, err := h.todos.DeleteTodo(r.Context(), user.ID, id)
	if err != nil {
		h.log.Error("failed to delete todo: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Todo not found")
		return
	}

	respondJSON(w, http.StatusOK, models.DeleteTodoResponse{Success: true})
}

func todoID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
