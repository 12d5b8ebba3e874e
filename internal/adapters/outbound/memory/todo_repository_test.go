package memory

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/todoql/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var (
	wakeUp = domain.Todo{ID: "1", Task: "Wake up early"}
	brush  = domain.Todo{ID: "2", Task: "Brush teeth"}
	milk   = domain.Todo{ID: "3", Task: "Buy milk", Completed: true}
)

func TestTodoRepository_ListTodos(t *testing.T) {
	tests := map[string]struct {
		seed     []domain.Todo
		opts     []domain.ListTodoOptions
		expected []domain.Todo
	}{
		"all-in-insertion-order": {
			seed:     []domain.Todo{wakeUp, brush, milk},
			expected: []domain.Todo{wakeUp, brush, milk},
		},
		"only-completed": {
			seed:     []domain.Todo{wakeUp, milk, brush},
			opts:     []domain.ListTodoOptions{domain.WithCompleted(true)},
			expected: []domain.Todo{milk},
		},
		"only-open": {
			seed:     []domain.Todo{wakeUp, milk, brush},
			opts:     []domain.ListTodoOptions{domain.WithCompleted(false)},
			expected: []domain.Todo{wakeUp, brush},
		},
		"empty": {
			expected: []domain.Todo{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := NewTodoRepository(tt.seed...)

			got, err := repo.ListTodos(context.Background(), tt.opts...)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTodoRepository_ListTodos_ReturnsCopy(t *testing.T) {
	repo := NewTodoRepository(wakeUp, brush)

	got, err := repo.ListTodos(context.Background())
	require.NoError(t, err)
	got[0].Completed = true
	got[1].Task = "changed"

	again, err := repo.ListTodos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Todo{wakeUp, brush}, again)
}

func TestTodoRepository_CreateTodo(t *testing.T) {
	repo := NewTodoRepository(wakeUp, brush)

	err := repo.CreateTodo(context.Background(), milk)
	assert.NoError(t, err)

	got, _ := repo.ListTodos(context.Background())
	assert.Equal(t, []domain.Todo{wakeUp, brush, milk}, got)

	err = repo.CreateTodo(context.Background(), domain.Todo{ID: "1", Task: "Duplicate"})
	assert.EqualError(t, err, `todo with id "1" already exists`)

	got, _ = repo.ListTodos(context.Background())
	assert.Len(t, got, 3)
}

func TestTodoRepository_MarkTodoCompleted(t *testing.T) {
	tests := map[string]struct {
		id          string
		expected    domain.Todo
		expectedErr error
		expectedAll []domain.Todo
	}{
		"found": {
			id:          "2",
			expected:    domain.Todo{ID: "2", Task: "Brush teeth", Completed: true},
			expectedAll: []domain.Todo{wakeUp, {ID: "2", Task: "Brush teeth", Completed: true}},
		},
		"not-found": {
			id:          "42",
			expectedErr: domain.NewNotFoundErr(`todo "42" not found`),
			expectedAll: []domain.Todo{wakeUp, brush},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := NewTodoRepository(wakeUp, brush)

			got, err := repo.MarkTodoCompleted(context.Background(), tt.id)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)

			all, _ := repo.ListTodos(context.Background())
			assert.Equal(t, tt.expectedAll, all)
		})
	}
}

func TestTodoRepository_MarkTodoCompleted_Twice(t *testing.T) {
	repo := NewTodoRepository(wakeUp)

	for range 2 {
		got, err := repo.MarkTodoCompleted(context.Background(), "1")
		assert.NoError(t, err)
		assert.True(t, got.Completed)
	}

	all, _ := repo.ListTodos(context.Background())
	assert.Equal(t, []domain.Todo{{ID: "1", Task: "Wake up early", Completed: true}}, all)
}

func TestTodoRepository_DeleteTodo(t *testing.T) {
	tests := map[string]struct {
		id          string
		expected    domain.Todo
		expectedErr error
		expectedAll []domain.Todo
	}{
		"first": {
			id:          "1",
			expected:    wakeUp,
			expectedAll: []domain.Todo{brush, milk},
		},
		"middle": {
			id:          "2",
			expected:    brush,
			expectedAll: []domain.Todo{wakeUp, milk},
		},
		"last": {
			id:          "3",
			expected:    milk,
			expectedAll: []domain.Todo{wakeUp, brush},
		},
		"not-found": {
			id:          "42",
			expectedErr: domain.NewNotFoundErr(`todo "42" not found`),
			expectedAll: []domain.Todo{wakeUp, brush, milk},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := NewTodoRepository(wakeUp, brush, milk)

			got, err := repo.DeleteTodo(context.Background(), tt.id)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)

			all, _ := repo.ListTodos(context.Background())
			assert.Equal(t, tt.expectedAll, all)
		})
	}
}

func TestTodoRepository_ConcurrentAccess(t *testing.T) {
	repo := NewTodoRepository()
	const n = 200

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			id := fmt.Sprintf("todo-%d", i)
			if err := repo.CreateTodo(context.Background(), domain.Todo{ID: id, Task: id}); err != nil {
				return err
			}
			if i%2 == 0 {
				_, err := repo.MarkTodoCompleted(context.Background(), id)
				return err
			}
			_, err := repo.ListTodos(context.Background())
			return err
		})
	}
	require.NoError(t, g.Wait())

	all, _ := repo.ListTodos(context.Background())
	assert.Len(t, all, n)

	ids := make(map[string]struct{}, n)
	for _, todo := range all {
		ids[todo.ID] = struct{}{}
	}
	assert.Len(t, ids, n)

	completed, _ := repo.ListTodos(context.Background(), domain.WithCompleted(true))
	assert.Len(t, completed, n/2)
}

func TestInitTodoRepository_Initialize(t *testing.T) {
	tests := map[string]struct {
		seedFile      string
		expectedTasks []string
		expectErr     bool
	}{
		"default-seed": {
			expectedTasks: []string{"Wake up early", "Brush teeth"},
		},
		"seed-file": {
			seedFile:      "- task: Eat breakfast\n- task: Walk the dog\n  completed: true\n",
			expectedTasks: []string{"Eat breakfast", "Walk the dog"},
		},
		"invalid-seed-file": {
			seedFile:  "- completed: true\n",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			config.ResetGlobalProvider()
			t.Cleanup(depend.ClearContainer)

			if tt.seedFile != "" {
				path := filepath.Join(t.TempDir(), "seed.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.seedFile), 0o600))
				t.Setenv("TODO_SEED_FILE", path)
			}

			init := &InitTodoRepository{Logger: log.New(io.Discard, "", 0)}
			_, err := init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			repo, err := depend.Resolve[domain.TodoRepository]()
			require.NoError(t, err)

			todos, err := repo.ListTodos(context.Background())
			require.NoError(t, err)

			tasks := make([]string, len(todos))
			for i, todo := range todos {
				tasks[i] = todo.Task
				assert.NotEmpty(t, todo.ID)
			}
			assert.Equal(t, tt.expectedTasks, tasks)
		})
	}
}
