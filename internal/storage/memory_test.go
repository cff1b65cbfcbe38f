package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yourusername/todo-backend/internal/models"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestMemoryUserStorage_CreateUser(t *testing.T) {
	s := NewMemoryUserStorage()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "Ann", "a@x.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("expected first user id 1, got %d", user.ID)
	}
	if user.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", user.Email)
	}
}

func TestMemoryUserStorage_DuplicateEmail(t *testing.T) {
	s := NewMemoryUserStorage()
	ctx := context.Background()

	if _, err := s.CreateUser(ctx, "Ann", "a@x.com", "hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.CreateUser(ctx, "Bob", "a@x.com", "hash2")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// The failed signup must not have taken an id or stored a row.
	user, err := s.GetUserByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Ann" {
		t.Errorf("expected original user to survive, got name %s", user.Name)
	}

	next, err := s.CreateUser(ctx, "Cid", "c@x.com", "hash3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.ID != 2 {
		t.Errorf("expected next id 2, got %d", next.ID)
	}
}

func TestMemoryUserStorage_GetMissing(t *testing.T) {
	s := NewMemoryUserStorage()
	ctx := context.Background()

	user, err := s.GetUserByEmail(ctx, "nobody@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Error("expected nil for unknown email")
	}

	user, err = s.GetUserByID(ctx, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestMemoryUserStorage_DeleteUser(t *testing.T) {
	s := NewMemoryUserStorage()
	ctx := context.Background()

	user, err := s.CreateUser(ctx, "Ann", "a@x.com", "hash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := s.DeleteUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report true")
	}

	got, err := s.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected user to be gone after delete")
	}

	deleted, err = s.DeleteUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestMemoryTodoStorage_ListOrder(t *testing.T) {
	s := NewMemoryTodoStorage()
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if _, err := s.CreateTodo(ctx, 1, &models.TodoInput{Title: title}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	todos, err := s.ListTodos(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(todos))
	}
	if todos[0].Title != "third" || todos[2].Title != "first" {
		t.Errorf("expected newest first, got %s, %s, %s", todos[0].Title, todos[1].Title, todos[2].Title)
	}
}

func TestMemoryTodoStorage_OwnerScoping(t *testing.T) {
	s := NewMemoryTodoStorage()
	ctx := context.Background()

	mine, err := s.CreateTodo(ctx, 1, &models.TodoInput{Title: "mine"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every owner-mismatched access behaves like a missing todo.
	got, err := s.GetTodo(ctx, 2, mine.ID)
	if err != nil || got != nil {
		t.Errorf("expected nil for foreign get, got %v, %v", got, err)
	}

	replaced, err := s.ReplaceTodo(ctx, 2, mine.ID, &models.TodoInput{Title: "stolen"})
	if err != nil || replaced != nil {
		t.Errorf("expected nil for foreign replace, got %v, %v", replaced, err)
	}

	patched, err := s.PatchTodo(ctx, 2, mine.ID, &models.TodoPatch{Done: boolPtr(true)})
	if err != nil || patched != nil {
		t.Errorf("expected nil for foreign patch, got %v, %v", patched, err)
	}

	deleted, err := s.DeleteTodo(ctx, 2, mine.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected foreign delete to report false")
	}

	list, err := s.ListTodos(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list for other user, got %d", len(list))
	}

	// And the todo is untouched for its owner.
	got, err = s.GetTodo(ctx, 1, mine.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Title != "mine" || got.Done {
		t.Errorf("expected owner's todo unchanged, got %+v", got)
	}
}

func TestMemoryTodoStorage_PatchKeepsOmittedFields(t *testing.T) {
	s := NewMemoryTodoStorage()
	ctx := context.Background()

	due := time.Now().Add(24 * time.Hour)
	created, err := s.CreateTodo(ctx, 1, &models.TodoInput{
		Title:       "Buy milk",
		Description: strPtr("2 liters"),
		Priority:    strPtr("high"),
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patched, err := s.PatchTodo(ctx, 1, created.ID, &models.TodoPatch{Done: boolPtr(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !patched.Done {
		t.Error("expected done to be set")
	}
	if patched.Title != "Buy milk" {
		t.Errorf("expected title untouched, got %s", patched.Title)
	}
	if patched.Description == nil || *patched.Description != "2 liters" {
		t.Error("expected description untouched")
	}
	if patched.Priority == nil || *patched.Priority != "high" {
		t.Error("expected priority untouched")
	}
	if patched.DueDate == nil {
		t.Error("expected due date untouched")
	}
}

func TestMemoryTodoStorage_ReplaceResetsOmittedFields(t *testing.T) {
	s := NewMemoryTodoStorage()
	ctx := context.Background()

	created, err := s.CreateTodo(ctx, 1, &models.TodoInput{
		Title:       "Buy milk",
		Description: strPtr("2 liters"),
		Priority:    strPtr("high"),
		Done:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	replaced, err := s.ReplaceTodo(ctx, 1, created.ID, &models.TodoInput{Title: "Buy bread"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced.Title != "Buy bread" {
		t.Errorf("expected new title, got %s", replaced.Title)
	}
	if replaced.Description != nil {
		t.Error("expected description reset to nil")
	}
	if replaced.Priority != nil {
		t.Error("expected priority reset to nil")
	}
	if replaced.Done {
		t.Error("expected done reset to false")
	}
}

func TestMemoryTodoStorage_Delete(t *testing.T) {
	s := NewMemoryTodoStorage()
	ctx := context.Background()

	created, err := s.CreateTodo(ctx, 1, &models.TodoInput{Title: "temp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := s.DeleteTodo(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report true")
	}

	got, err := s.GetTodo(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected todo to be gone after delete")
	}
}
