package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todoql/internal/domain"
	"github.com/cleitonmarx/todoql/internal/tracing"
	"github.com/google/uuid"
)

// CreateTodoParams holds the input of the CreateTodo use case.
// A nil field means the argument was not supplied.
type CreateTodoParams struct {
	Task      *string
	Completed *bool
}

// CreateTodo defines the interface for the CreateTodo use case.
type CreateTodo interface {
	Execute(ctx context.Context, params CreateTodoParams) (domain.Todo, error)
}

// CreateTodoImpl is the implementation of the CreateTodo use case.
type CreateTodoImpl struct {
	repo     domain.TodoRepository
	createID func() string
}

// NewCreateTodoImpl creates a new instance of CreateTodoImpl.
func NewCreateTodoImpl(repo domain.TodoRepository) CreateTodoImpl {
	return CreateTodoImpl{
		repo:     repo,
		createID: uuid.NewString,
	}
}

// Execute appends a new todo with a fresh identifier.
// A missing argument returns a domain.ValidationErr and leaves the collection unchanged.
func (cti CreateTodoImpl) Execute(ctx context.Context, params CreateTodoParams) (domain.Todo, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	if err := validateCreateTodoParams(params); tracing.RecordErrorAndStatus(span, err) {
		tracing.CountMutation(spanCtx, "addTodo", "invalid_input")
		return domain.Todo{}, err
	}

	todo := domain.Todo{
		ID:        cti.createID(),
		Task:      *params.Task,
		Completed: *params.Completed,
	}

	err := cti.repo.CreateTodo(spanCtx, todo)
	if tracing.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	tracing.CountMutation(spanCtx, "addTodo", "created")
	return todo, nil
}

func validateCreateTodoParams(params CreateTodoParams) error {
	if params.Task == nil {
		return domain.NewValidationErr("task is required")
	}
	if params.Completed == nil {
		return domain.NewValidationErr("completed is required")
	}
	return nil
}

// InitCreateTodo initializes the CreateTodo use case and registers it in the dependency container.
type InitCreateTodo struct {
	Repo domain.TodoRepository `resolve:""`
}

// Initialize registers the CreateTodoImpl use case.
func (ict *InitCreateTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTodo](NewCreateTodoImpl(ict.Repo))
	return ctx, nil
}
