package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todoql/internal/domain"
	domain_mocks "github.com/cleitonmarx/todoql/internal/domain/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTodoImpl_Execute(t *testing.T) {
	fixedID := func() string {
		return "123e4567-e89b-12d3-a456-426614174000"
	}
	task := "Buy milk"
	completed := false
	todo := domain.Todo{
		ID:        fixedID(),
		Task:      task,
		Completed: completed,
	}

	tests := map[string]struct {
		params          CreateTodoParams
		setExpectations func(repo *domain_mocks.MockTodoRepository)
		expectedTodo    domain.Todo
		expectedErr     error
	}{
		"success": {
			params: CreateTodoParams{Task: &task, Completed: &completed},
			setExpectations: func(repo *domain_mocks.MockTodoRepository) {
				repo.EXPECT().CreateTodo(mock.Anything, todo).Return(nil)
			},
			expectedTodo: todo,
		},
		"empty-task-is-accepted": {
			params: CreateTodoParams{Task: new(string), Completed: &completed},
			setExpectations: func(repo *domain_mocks.MockTodoRepository) {
				repo.EXPECT().
					CreateTodo(mock.Anything, domain.Todo{ID: fixedID()}).
					Return(nil)
			},
			expectedTodo: domain.Todo{ID: fixedID()},
		},
		"missing-task": {
			params:      CreateTodoParams{Completed: &completed},
			expectedErr: domain.NewValidationErr("task is required"),
		},
		"missing-completed": {
			params:      CreateTodoParams{Task: &task},
			expectedErr: domain.NewValidationErr("completed is required"),
		},
		"missing-both": {
			params:      CreateTodoParams{},
			expectedErr: domain.NewValidationErr("task is required"),
		},
		"repository-error": {
			params: CreateTodoParams{Task: &task, Completed: &completed},
			setExpectations: func(repo *domain_mocks.MockTodoRepository) {
				repo.EXPECT().CreateTodo(mock.Anything, todo).Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockTodoRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			cti := NewCreateTodoImpl(repo)
			cti.createID = fixedID

			got, err := cti.Execute(context.Background(), tt.params)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedTodo, got)
		})
	}
}

func TestCreateTodoImpl_Execute_UniqueIDs(t *testing.T) {
	repo := domain_mocks.NewMockTodoRepository(t)
	repo.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(nil).Times(50)

	cti := NewCreateTodoImpl(repo)
	task, completed := "Buy milk", false

	ids := make(map[string]struct{})
	for range 50 {
		todo, err := cti.Execute(context.Background(), CreateTodoParams{Task: &task, Completed: &completed})
		assert.NoError(t, err)
		_, err = uuid.Parse(todo.ID)
		assert.NoError(t, err)
		ids[todo.ID] = struct{}{}
	}
	assert.Len(t, ids, 50)
}

func TestInitCreateTodo_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	ict := InitCreateTodo{Repo: domain_mocks.NewMockTodoRepository(t)}
	ctx, err := ict.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CreateTodo]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
