package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todoql/internal/domain"
	"github.com/cleitonmarx/todoql/internal/tracing"
)

// ListTodos defines the interface for the ListTodos use case.
type ListTodos interface {
	Query(ctx context.Context, opts ...domain.ListTodoOptions) ([]domain.Todo, error)
}

// ListTodosImpl is the implementation of the ListTodos use case.
type ListTodosImpl struct {
	repo domain.TodoRepository
}

// NewListTodosImpl creates a new instance of ListTodosImpl.
func NewListTodosImpl(repo domain.TodoRepository) ListTodosImpl {
	return ListTodosImpl{
		repo: repo,
	}
}

// Query retrieves the todos matching the options in insertion order.
func (lti ListTodosImpl) Query(ctx context.Context, opts ...domain.ListTodoOptions) ([]domain.Todo, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	todos, err := lti.repo.ListTodos(spanCtx, opts...)
	if tracing.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return todos, nil
}

// InitListTodos initializes the ListTodos use case and registers it in the dependency container.
type InitListTodos struct {
	Repo domain.TodoRepository `resolve:""`
}

// Initialize registers the ListTodosImpl use case.
func (ilt *InitListTodos) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTodos](NewListTodosImpl(ilt.Repo))
	return ctx, nil
}
