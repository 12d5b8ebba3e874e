package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todoql/internal/domain"
	domain_mocks "github.com/cleitonmarx/todoql/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListTodosImpl_Query(t *testing.T) {
	todos := []domain.Todo{
		{ID: "1", Task: "Wake up early"},
		{ID: "2", Task: "Buy milk", Completed: true},
	}

	tests := map[string]struct {
		opts            []domain.ListTodoOptions
		setExpectations func(repo *domain_mocks.MockTodoRepository)
		expected        []domain.Todo
		expectedErr     error
	}{
		"all": {
			setExpectations: func(repo *domain_mocks.MockTodoRepository) {
				repo.EXPECT().ListTodos(mock.Anything).Return(todos, nil)
			},
			expected: todos,
		},
		"completed-filter-is-forwarded": {
			opts: []domain.ListTodoOptions{domain.WithCompleted(true)},
			setExpectations: func(repo *domain_mocks.MockTodoRepository) {
				repo.EXPECT().
					ListTodos(mock.Anything, mock.Anything).
					Run(func(_ context.Context, opts ...domain.ListTodoOptions) {
						params := domain.ListTodosParams{}
						for _, opt := range opts {
							opt(&params)
						}
						assert.NotNil(t, params.Completed)
						assert.True(t, *params.Completed)
					}).
					Return(todos[1:], nil)
			},
			expected: todos[1:],
		},
		"repository-error": {
			setExpectations: func(repo *domain_mocks.MockTodoRepository) {
				repo.EXPECT().ListTodos(mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedErr: errors.New("boom"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockTodoRepository(t)
			tt.setExpectations(repo)

			lti := NewListTodosImpl(repo)
			got, err := lti.Query(context.Background(), tt.opts...)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitListTodos_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	ilt := InitListTodos{Repo: domain_mocks.NewMockTodoRepository(t)}
	ctx, err := ilt.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListTodos]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
