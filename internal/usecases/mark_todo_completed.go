package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todoql/internal/domain"
	"github.com/cleitonmarx/todoql/internal/tracing"
)

// MarkTodoCompleted defines the interface for the MarkTodoCompleted use case.
type MarkTodoCompleted interface {
	Execute(ctx context.Context, id string) (domain.Todo, error)
}

// MarkTodoCompletedImpl is the implementation of the MarkTodoCompleted use case.
type MarkTodoCompletedImpl struct {
	repo domain.TodoRepository
}

// NewMarkTodoCompletedImpl creates a new instance of MarkTodoCompletedImpl.
func NewMarkTodoCompletedImpl(repo domain.TodoRepository) MarkTodoCompletedImpl {
	return MarkTodoCompletedImpl{
		repo: repo,
	}
}

// Execute sets the completed flag of the todo identified by id.
// Completing an already completed todo succeeds again; an unknown id returns a domain.NotFoundErr.
func (mtc MarkTodoCompletedImpl) Execute(ctx context.Context, id string) (domain.Todo, error) {
	spanCtx, span := tracing.Start(ctx)
	defer span.End()

	todo, err := mtc.repo.MarkTodoCompleted(spanCtx, id)
	if tracing.RecordErrorAndStatus(span, err) {
		if errors.As(err, new(domain.NotFoundErr)) {
			tracing.CountMutation(spanCtx, "updateTodo", "not_found")
		}
		return domain.Todo{}, err
	}

	tracing.CountMutation(spanCtx, "updateTodo", "completed")
	return todo, nil
}

// InitMarkTodoCompleted initializes the MarkTodoCompleted use case and registers it in the dependency container.
type InitMarkTodoCompleted struct {
	Repo domain.TodoRepository `resolve:""`
}

// Initialize registers the MarkTodoCompletedImpl use case.
func (imt *InitMarkTodoCompleted) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[MarkTodoCompleted](NewMarkTodoCompletedImpl(imt.Repo))
	return ctx, nil
}
