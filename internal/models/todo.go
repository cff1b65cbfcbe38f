package models

import "time"

type Todo struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Done        bool       `json:"done"`
	ReminderAt  *time.Time `json:"reminder_at"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Tags        *string    `json:"tags"`
	UserID      int64      `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TodoInput is the payload for create and full replace. Optional fields left
// out of a PUT body reset to their zero value on the stored record.
type TodoInput struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Done        bool       `json:"done"`
	ReminderAt  *time.Time `json:"reminder_at"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Tags        *string    `json:"tags"`
}

// TodoPatch is the payload for partial updates. A nil field is left
// unchanged. JSON null and an omitted field both decode to nil, so an
// explicit null also means "no change".
type TodoPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Done        *bool      `json:"done"`
	ReminderAt  *time.Time `json:"reminder_at"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Tags        *string    `json:"tags"`
}

type DeleteTodoResponse struct {
	Success bool `json:"success"`
}
