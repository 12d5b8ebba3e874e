package app

import (
	"context"
	"encoding/json"
	stdlog "log"

	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"github.com/cleitonmarx/todoql/internal/adapters/inbound/graphql"
	"github.com/cleitonmarx/todoql/internal/adapters/outbound/log"
	"github.com/cleitonmarx/todoql/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/todoql/internal/tracing"
	"github.com/cleitonmarx/todoql/internal/usecases"
)

// NewTodoApp creates and returns a new instance of the todoql application.
// The given initializers run before the application's own.
func NewTodoApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&tracing.InitOpenTelemetry{},
			&memory.InitTodoRepository{},
			&usecases.InitListTodos{},
			&usecases.InitCreateTodo{},
			&usecases.InitMarkTodoCompleted{},
			&usecases.InitDeleteTodo{},
		).
		Host(
			&graphql.TodoGraphQLServer{},
		)
}

// ReportLoggerIntrospector is an implementation of symbiont.Introspector that logs the introspection report.
type ReportLoggerIntrospector struct {
	Logger *stdlog.Logger `resolve:""`
}

// Introspect logs the introspection report and its Mermaid graph at debug level.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	i.Logger.Println("DEBUG === TODOQL INTROSPECTION REPORT ===")
	i.Logger.Println("DEBUG " + string(b))
	i.Logger.Println("DEBUG === MERMAID GRAPH ===")
	i.Logger.Println("DEBUG " + mermaid.GenerateIntrospectionGraph(r))
	i.Logger.Println("DEBUG === END OF REPORT ===")
	return nil
}
