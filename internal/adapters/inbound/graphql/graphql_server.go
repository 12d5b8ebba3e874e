package graphql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"github.com/cleitonmarx/todoql/internal/tracing"
	"github.com/cleitonmarx/todoql/internal/usecases"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TodoGraphQLServer serves the Todo GraphQL API.
//
// It is both the Runnable hosting the HTTP endpoints and the root resolver
// for the Query and Mutation types. Dependencies and configuration are
// injected by the application at start-up.
type TodoGraphQLServer struct {
	Port                     int                        `config:"PORT" default:"4000"`
	MaxDepth                 int                        `config:"GRAPHQL_MAX_DEPTH" default:"10"`
	Logger                   *log.Logger                `resolve:""`
	ListTodosUsecase         usecases.ListTodos         `resolve:""`
	CreateTodoUsecase        usecases.CreateTodo        `resolve:""`
	MarkTodoCompletedUsecase usecases.MarkTodoCompleted `resolve:""`
	DeleteTodoUsecase        usecases.DeleteTodo        `resolve:""`

	report introspection.Report
}

// Introspect keeps the application report to serve it as a graph under /introspect/.
func (s *TodoGraphQLServer) Introspect(_ context.Context, r introspection.Report) error {
	s.report = r
	return nil
}

// Handler builds the HTTP handler with every endpoint of the server.
func (s *TodoGraphQLServer) Handler() (http.Handler, error) {
	sdl, err := loadSchemaSDL()
	if err != nil {
		return nil, err
	}
	schema, err := newSchema(s, s.MaxDepth, s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to bind resolvers: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /graphql", &relay.Handler{Schema: schema})
	mux.Handle("GET /{$}", playground.Handler("todoql", "/graphql"))
	mux.HandleFunc("GET /schema", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, sdl)
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	mux.Handle("GET /introspect/", mermaid.NewGraphHandler("todoql", s.report))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	})

	return otelhttp.NewHandler(
		c.Handler(mux),
		"todoql",
		otelhttp.WithSpanNameFormatter(tracing.SpanNameFormatter),
	), nil
}

// Run starts the HTTP server and shuts it down gracefully when ctx is canceled.
func (s *TodoGraphQLServer) Run(ctx context.Context) error {
	h, err := s.Handler()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Port))
	if err != nil {
		return err
	}

	svr := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("Server ready at: http://localhost:%d/", s.Port)
		errCh <- svr.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.Logger.Print("TodoGraphQLServer: Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return svr.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady checks the health endpoint of the running server.
func (s *TodoGraphQLServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", s.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
