package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourusername/todo-backend/internal/models"
)

const todoColumns = `id, title, description, done, reminder_at, priority, due_date, tags, user_id, created_at, updated_at`

type PostgresTodoStorage struct {
	db *pgxpool.Pool
}

func NewPostgresTodoStorage(db *pgxpool.Pool) *PostgresTodoStorage {
	return &PostgresTodoStorage{db: db}
}

func scanTodo(row pgx.Row) (*models.Todo, error) {
	var todo models.Todo
	err := row.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Done,
		&todo.ReminderAt,
		&todo.Priority,
		&todo.DueDate,
		&todo.Tags,
		&todo.UserID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *PostgresTodoStorage) CreateTodo(ctx context.Context, userID int64, in *models.TodoInput) (*models.Todo, error) {
	query := `
		INSERT INTO todos (title, description, done, reminder_at, priority, due_date, tags, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + todoColumns

	todo, err := scanTodo(s.db.QueryRow(ctx, query,
		in.Title,
		in.Description,
		in.Done,
		in.ReminderAt,
		in.Priority,
		in.DueDate,
		in.Tags,
		userID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return todo, nil
}

func (s *PostgresTodoStorage) ListTodos(ctx context.Context, userID int64) ([]*models.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

func (s *PostgresTodoStorage) GetTodo(ctx context.Context, userID, id int64) (*models.Todo, error) {
	query := `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE id = $1 AND user_id = $2
	`

	todo, err := scanTodo(s.db.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

func (s *PostgresTodoStorage) ReplaceTodo(ctx context.Context, userID, id int64, in *models.TodoInput) (*models.Todo, error) {
	query := `
		UPDATE todos
		SET title = $1, description = $2, done = $3, reminder_at = $4,
			priority = $5, due_date = $6, tags = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING ` + todoColumns

	todo, err := scanTodo(s.db.QueryRow(ctx, query,
		in.Title,
		in.Description,
		in.Done,
		in.ReminderAt,
		in.Priority,
		in.DueDate,
		in.Tags,
		id,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to replace todo: %w", err)
	}

	return todo, nil
}

func (s *PostgresTodoStorage) PatchTodo(ctx context.Context, userID, id int64, patch *models.TodoPatch) (*models.Todo, error) {
	// Nil patch fields arrive as SQL NULL, so COALESCE keeps the stored value.
	query := `
		UPDATE todos
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			done = COALESCE($3, done),
			reminder_at = COALESCE($4, reminder_at),
			priority = COALESCE($5, priority),
			due_date = COALESCE($6, due_date),
			tags = COALESCE($7, tags),
			updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING ` + todoColumns

	todo, err := scanTodo(s.db.QueryRow(ctx, query,
		patch.Title,
		patch.Description,
		patch.Done,
		patch.ReminderAt,
		patch.Priority,
		patch.DueDate,
		patch.Tags,
		id,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to patch todo: %w", err)
	}

	return todo, nil
}

func (s *PostgresTodoStorage) DeleteTodo(ctx context.Context, userID, id int64) (bool, error) {
	cmdTag, err := s.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
