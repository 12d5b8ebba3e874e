package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todoql/internal/domain"
	"github.com/cleitonmarx/todoql/internal/tracing"
)

// DeleteTodo defines the interface for the DeleteTodo use case.
type DeleteTodo interface {
	Execute(ctx context.Context, id string) (domain.Todo, error)
}

// DeleteTodoImpl is the implementation of the DeleteTodo use case.
type DeleteTodoImpl struct {
	repo domain.TodoRepository
}

// NewDeleteTodoImpl creates a new instance of DeleteTodoImpl.
func NewDeleteTodoImpl(repo domain.TodoRepository) DeleteTodoImpl {
	return DeleteTodoImpl{
		repo: repo,
	}
}

// Execute removes the todo identified by id and returns it.
// An unknown id returns a domain.NotFoundErr and leaves the collection unchanged.
func (dti DeleteTodoImpl) Execute(ctx context.Context, id string) (domain.Todo, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	todo, err := dti.repo.DeleteTodo(spanCtx, id)
	if tracing.RecordErrorAndStatus(span, err) {
		if errors.As(err, new(domain.NotFoundErr)) {
			tracing.CountMutation(spanCtx, "deleteTodo", "not_found")
		}
		return domain.Todo{}, err
	}

	tracing.CountMutation(spanCtx, "deleteTodo", "deleted")
	return todo, nil
}

// InitDeleteTodo initializes the DeleteTodo use case.
type InitDeleteTodo struct {
	Repo domain.TodoRepository `resolve:""`
}

// Initialize registers the DeleteTodo use case in the dependency container.
func (i *InitDeleteTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTodo](NewDeleteTodoImpl(i.Repo))
	return ctx, nil
}
