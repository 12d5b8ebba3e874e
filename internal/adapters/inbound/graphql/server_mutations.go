package graphql

import (
	"context"
	"errors"

	"github.com/cleitonmarx/todoql/internal/domain"
	"github.com/cleitonmarx/todoql/internal/usecases"
)

const (
	markedCompletedMessage = "Successfully marked item as completed"
	itemNotFoundMessage    = "Unable to find Item"
)

type addTodoArgs struct {
	Task      string
	Completed bool
}

type todoIDArgs struct {
	ID *string
}

// AddTodo is the resolver for the addTodo field.
func (s *TodoGraphQLServer) AddTodo(ctx context.Context, args addTodoArgs) (*todoResolver, error) {
	todo, err := s.CreateTodoUsecase.Execute(ctx, usecases.CreateTodoParams{
		Task:      &args.Task,
		Completed: &args.Completed,
	})
	if err != nil {
		return nil, s.toResolverError("addTodo", err)
	}

	s.Logger.Printf("Added todo: id=%s task=%q completed=%t", todo.ID, todo.Task, todo.Completed)
	return &todoResolver{todo: todo}, nil
}

// UpdateTodo is the resolver for the updateTodo field.
// A missing or unknown id yields the not found message rather than an error.
func (s *TodoGraphQLServer) UpdateTodo(ctx context.Context, args todoIDArgs) (*string, error) {
	message := itemNotFoundMessage
	if args.ID == nil {
		return &message, nil
	}

	_, err := s.MarkTodoCompletedUsecase.Execute(ctx, *args.ID)
	if err != nil {
		if errors.As(err, new(domain.NotFoundErr)) {
			return &message, nil
		}
		return nil, s.toResolverError("updateTodo", err)
	}

	message = markedCompletedMessage
	return &message, nil
}

// DeleteTodo is the resolver for the deleteTodo field.
// A missing or unknown id resolves to null.
func (s *TodoGraphQLServer) DeleteTodo(ctx context.Context, args todoIDArgs) (*todoResolver, error) {
	if args.ID == nil {
		return nil, nil
	}

	todo, err := s.DeleteTodoUsecase.Execute(ctx, *args.ID)
	if err != nil {
		if errors.As(err, new(domain.NotFoundErr)) {
			return nil, nil
		}
		return nil, s.toResolverError("deleteTodo", err)
	}

	s.Logger.Printf("Deleted todo: id=%s task=%q completed=%t", todo.ID, todo.Task, todo.Completed)
	return &todoResolver{todo: todo}, nil
}
