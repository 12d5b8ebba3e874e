package graphql

import (
	"context"

	"github.com/cleitonmarx/todoql/internal/domain"
)

// todoResolver resolves the fields of the Todo type.
type todoResolver struct {
	todo domain.Todo
}

func (r *todoResolver) ID() *string {
	return &r.todo.ID
}

func (r *todoResolver) Task() *string {
	return &r.todo.Task
}

func (r *todoResolver) Completed() *bool {
	return &r.todo.Completed
}

func toTodoResolvers(todos []domain.Todo) []*todoResolver {
	resolvers := make([]*todoResolver, len(todos))
	for i, t := range todos {
		resolvers[i] = &todoResolver{todo: t}
	}
	return resolvers
}

// Todos is the resolver for the todos field.
func (s *TodoGraphQLServer) Todos(ctx context.Context) ([]*todoResolver, error) {
	todos, err := s.ListTodosUsecase.Query(ctx)
	if err != nil {
		return nil, s.toResolverError("todos", err)
	}
	return toTodoResolvers(todos), nil
}

// GetActiveTodos is the resolver for the getActiveTodos field.
// It returns the todos already marked as completed.
func (s *TodoGraphQLServer) GetActiveTodos(ctx context.Context) ([]*todoResolver, error) {
	todos, err := s.ListTodosUsecase.Query(ctx, domain.WithCompleted(true))
	if err != nil {
		return nil, s.toResolverError("getActiveTodos", err)
	}
	return toTodoResolvers(todos), nil
}
