package domain

import "context"

// Todo represents a task tracked by the application.
type Todo struct {
	ID        string
	Task      string
	Completed bool
}

// ListTodosParams holds the filters applied when listing todos.
type ListTodosParams struct {
	Completed *bool
}

// ListTodoOptions defines a function type for specifying options when listing todos.
type ListTodoOptions func(*ListTodosParams)

// WithCompleted restricts the listing to todos whose completed flag equals completed.
func WithCompleted(completed bool) ListTodoOptions {
	return func(params *ListTodosParams) {
		params.Completed = &completed
	}
}

// TodoRepository defines the storage operations for todos.
// Implementations must keep insertion order and must not hand out
// references that allow callers to mutate stored todos.
type TodoRepository interface {
	ListTodos(ctx context.Context, opts ...ListTodoOptions) ([]Todo, error)
	CreateTodo(ctx context.Context, todo Todo) error
	MarkTodoCompleted(ctx context.Context, id string) (Todo, error)
	DeleteTodo(ctx context.Context, id string) (Todo, error)
}
