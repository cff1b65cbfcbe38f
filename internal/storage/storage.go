package storage

import (
	"context"
	"errors"

	"github.com/yourusername/todo-backend/internal/models"
)

// ErrDuplicateEmail is returned by UserStore.CreateUser when the email is
// already registered. The postgres implementation maps the unique constraint
// violation raised by the insert itself, so a race between two concurrent
// signups resolves to exactly one success.
var ErrDuplicateEmail = errors.New("email already registered")

type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	// GetUserByEmail returns (nil, nil) when no user has the given email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns (nil, nil) when no user has the given id.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// DeleteUser reports whether a row was deleted.
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

// TodoStore persists todos. Every operation that targets an id filters by
// userID in the same statement, so a todo owned by another user behaves
// exactly like a missing one.
type TodoStore interface {
	CreateTodo(ctx context.Context, userID int64, in *models.TodoInput) (*models.Todo, error)
	// ListTodos returns the owner's todos ordered by creation time, newest first.
	ListTodos(ctx context.Context, userID int64) ([]*models.Todo, error)
	// GetTodo returns (nil, nil) when the todo is absent or owned by someone else.
	GetTodo(ctx context.Context, userID, id int64) (*models.Todo, error)
	// ReplaceTodo overwrites every mutable field. Returns (nil, nil) when absent.
	ReplaceTodo(ctx context.Context, userID, id int64, in *models.TodoInput) (*models.Todo, error)
	// PatchTodo mutates only the non-nil fields of patch. Returns (nil, nil) when absent.
	PatchTodo(ctx context.Context, userID, id int64, patch *models.TodoPatch) (*models.Todo, error)
	// DeleteTodo reports whether a row was deleted.
	DeleteTodo(ctx context.Context, userID, id int64) (bool, error)
}
