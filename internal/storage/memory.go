package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yourusername/todo-backend/internal/models"
)

// MemoryUserStorage is an in-process UserStore used by tests and the
// STORAGE_BACKEND=memory dev mode. Email uniqueness is enforced under the
// store mutex, standing in for the database constraint.
type MemoryUserStorage struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]*models.User
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{users: make(map[int64]*models.User)}
}

func (s *MemoryUserStorage) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	s.nextID++
	user := &models.User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[user.ID] = user

	clone := *user
	return &clone, nil
}

func (s *MemoryUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStorage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (s *MemoryUserStorage) DeleteUser(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

type MemoryTodoStorage struct {
	mu     sync.RWMutex
	nextID int64
	todos  map[int64]*models.Todo
}

func NewMemoryTodoStorage() *MemoryTodoStorage {
	return &MemoryTodoStorage{todos: make(map[int64]*models.Todo)}
}

func (s *MemoryTodoStorage) CreateTodo(ctx context.Context, userID int64, in *models.TodoInput) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.nextID++
	todo := &models.Todo{
		ID:          s.nextID,
		Title:       in.Title,
		Description: in.Description,
		Done:        in.Done,
		ReminderAt:  in.ReminderAt,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		Tags:        in.Tags,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.todos[todo.ID] = todo

	clone := *todo
	return &clone, nil
}

func (s *MemoryTodoStorage) ListTodos(ctx context.Context, userID int64) ([]*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]*models.Todo, 0)
	for _, t := range s.todos {
		if t.UserID == userID {
			clone := *t
			todos = append(todos, &clone)
		}
	}

	sort.Slice(todos, func(i, j int) bool {
		if todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].ID > todos[j].ID
		}
		return todos[i].CreatedAt.After(todos[j].CreatedAt)
	})

	return todos, nil
}

func (s *MemoryTodoStorage) GetTodo(ctx context.Context, userID, id int64) (*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.findOwned(userID, id)
	if t == nil {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (s *MemoryTodoStorage) ReplaceTodo(ctx context.Context, userID, id int64, in *models.TodoInput) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findOwned(userID, id)
	if t == nil {
		return nil, nil
	}

	t.Title = in.Title
	t.Description = in.Description
	t.Done = in.Done
	t.ReminderAt = in.ReminderAt
	t.Priority = in.Priority
	t.DueDate = in.DueDate
	t.Tags = in.Tags
	t.UpdatedAt = time.Now()

	clone := *t
	return &clone, nil
}

func (s *MemoryTodoStorage) PatchTodo(ctx context.Context, userID, id int64, patch *models.TodoPatch) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findOwned(userID, id)
	if t == nil {
		return nil, nil
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}
	if patch.ReminderAt != nil {
		t.ReminderAt = patch.ReminderAt
	}
	if patch.Priority != nil {
		t.Priority = patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.Tags != nil {
		t.Tags = patch.Tags
	}
	t.UpdatedAt = time.Now()

	clone := *t
	return &clone, nil
}

func (s *MemoryTodoStorage) DeleteTodo(ctx context.Context, userID, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findOwned(userID, id) == nil {
		return false, nil
	}
	delete(s.todos, id)
	return true, nil
}

func (s *MemoryTodoStorage) findOwned(userID, id int64) *models.Todo {
	t, ok := s.todos[id]
	if !ok || t.UserID != userID {
		return nil
	}
	return t
}
