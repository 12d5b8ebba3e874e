package memory

import (
	"fmt"
	"os"

	"github.com/cleitonmarx/todoql/internal/domain"
	"go.yaml.in/yaml/v3"
)

// SeedEntry describes a todo present when the process starts.
type SeedEntry struct {
	Task      string `yaml:"task"`
	Completed bool   `yaml:"completed"`
}

// DefaultSeed is the seed set used when no seed file is configured.
var DefaultSeed = []SeedEntry{
	{Task: "Wake up early"},
	{Task: "Brush teeth"},
}

// LoadSeedFile reads a YAML list of seed entries from path.
//
//	- task: Wake up early
//	  completed: false
//	- task: Brush teeth
func LoadSeedFile(path string) ([]SeedEntry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSeed(b)
}

// ParseSeed decodes a YAML list of seed entries. Every entry needs a task.
func ParseSeed(b []byte) ([]SeedEntry, error) {
	var entries []SeedEntry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	for i, e := range entries {
		if e.Task == "" {
			return nil, fmt.Errorf("seed entry %d: task is required", i)
		}
	}
	return entries, nil
}

// SeedTodos turns seed entries into todos with fresh identifiers.
func SeedTodos(entries []SeedEntry, newID func() string) []domain.Todo {
	todos := make([]domain.Todo, len(entries))
	for i, e := range entries {
		todos[i] = domain.Todo{
			ID:        newID(),
			Task:      e.Task,
			Completed: e.Completed,
		}
	}
	return todos
}
