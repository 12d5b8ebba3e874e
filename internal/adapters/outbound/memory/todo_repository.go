package memory

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todoql/internal/domain"
	"github.com/cleitonmarx/todoql/internal/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TodoRepository is an in-memory implementation of domain.TodoRepository.
// Todos are kept in insertion order and every operation is serialized by a single mutex.
type TodoRepository struct {
	mu    sync.Mutex
	todos []domain.Todo
}

// NewTodoRepository creates a repository holding the given todos in order.
func NewTodoRepository(todos ...domain.Todo) *TodoRepository {
	return &TodoRepository{
		todos: append([]domain.Todo(nil), todos...),
	}
}

// ListTodos returns a copy of the stored todos matching the options, in insertion order.
func (tr *TodoRepository) ListTodos(ctx context.Context, opts ...domain.ListTodoOptions) ([]domain.Todo, error) {
	_, span := tracing.Start(ctx)
	defer span.End()

	params := domain.ListTodosParams{}
	for _, opt := range opts {
		opt(&params)
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	todos := make([]domain.Todo, 0, len(tr.todos))
	for _, todo := range tr.todos {
		if params.Completed != nil && todo.Completed != *params.Completed {
			continue
		}
		todos = append(todos, todo)
	}

	span.SetAttributes(attribute.Int("todos.count", len(todos)))
	return todos, nil
}

// CreateTodo appends a todo to the collection.
func (tr *TodoRepository) CreateTodo(ctx context.Context, todo domain.Todo) error {
	_, span := tracing.Start(ctx, trace.WithAttributes(
		attribute.String("todo.id", todo.ID),
	))
	defer span.End()

	tr.mu.Lock()
	defer tr.mu.Unlock()

	if tr.indexOf(todo.ID) >= 0 {
		err := fmt.Errorf("todo with id %q already exists", todo.ID)
		tracing.RecordErrorAndStatus(span, err)
		return err
	}

	tr.todos = append(tr.todos, todo)
	return nil
}

// MarkTodoCompleted sets the completed flag of the matching todo and returns it.
func (tr *TodoRepository) MarkTodoCompleted(ctx context.Context, id string) (domain.Todo, error) {
	_, span := tracing.Start(ctx, trace.WithAttributes(
		attribute.String("todo.id", id),
	))
	defer span.End()

	tr.mu.Lock()
	defer tr.mu.Unlock()

	i := tr.indexOf(id)
	if i < 0 {
		return domain.Todo{}, todoNotFound(id)
	}

	tr.todos[i].Completed = true
	return tr.todos[i], nil
}

// DeleteTodo removes the matching todo, keeping the order of the others, and returns it.
func (tr *TodoRepository) DeleteTodo(ctx context.Context, id string) (domain.Todo, error) {
	_, span := tracing.Start(ctx, trace.WithAttributes(
		attribute.String("todo.id", id),
	))
	defer span.End()

	tr.mu.Lock()
	defer tr.mu.Unlock()

	i := tr.indexOf(id)
	if i < 0 {
		return domain.Todo{}, todoNotFound(id)
	}

	removed := tr.todos[i]
	remaining := make([]domain.Todo, 0, len(tr.todos)-1)
	remaining = append(remaining, tr.todos[:i]...)
	remaining = append(remaining, tr.todos[i+1:]...)
	tr.todos = remaining

	return removed, nil
}

// indexOf returns the position of the todo with the given id, or -1.
// The caller must hold tr.mu.
func (tr *TodoRepository) indexOf(id string) int {
	for i, todo := range tr.todos {
		if todo.ID == id {
			return i
		}
	}
	return -1
}

func todoNotFound(id string) error {
	return domain.NewNotFoundErr(fmt.Sprintf("todo %q not found", id))
}

// InitTodoRepository creates the in-memory repository, seeds it and registers it in the dependency container.
// TODO_SEED_FILE points to a YAML seed file; when unset the built-in seed set is used.
type InitTodoRepository struct {
	Logger *log.Logger `resolve:""`
}

// Initialize loads the seed set and registers the repository as the domain.TodoRepository.
func (i *InitTodoRepository) Initialize(ctx context.Context) (context.Context, error) {
	entries := DefaultSeed
	if seedFile := config.GetWithDefault(ctx, "TODO_SEED_FILE", ""); seedFile != "" {
		loaded, err := LoadSeedFile(seedFile)
		if err != nil {
			return ctx, err
		}
		entries = loaded
	}

	repo := NewTodoRepository(SeedTodos(entries, uuid.NewString)...)
	i.Logger.Printf("Seeded todo repository with %d todos", len(entries))

	depend.Register[domain.TodoRepository](repo)
	return ctx, nil
}
