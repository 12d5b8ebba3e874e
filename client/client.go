// Package client provides a Go client for the todoql GraphQL API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/todoql/internal/tracing"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Todo is a todo item as returned by the API.
type Todo struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

// GraphQLError is an entry of the errors list of a GraphQL response.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// ResponseError is returned when the server answers with GraphQL errors.
type ResponseError struct {
	Errors []GraphQLError
}

func (e *ResponseError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, gqlErr := range e.Errors {
		messages[i] = gqlErr.Message
	}
	return "graphql: " + strings.Join(messages, "; ")
}

// Client calls the GraphQL endpoint of a todoql server.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a new client for the server at baseURL, e.g. "http://localhost:4000".
// A nil httpClient is replaced by NewHTTPClient(nil).
func New(baseURL string, httpClient *http.Client) (Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return Client{}, errors.New("client: baseURL is required")
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(nil)
	}
	return Client{
		endpoint: baseURL + "/graphql",
		http:     httpClient,
	}, nil
}

// NewHTTPClient returns an HTTP client that retries failed requests and
// is instrumented with OpenTelemetry. Retry attempts are logged to logger when it is not nil.
func NewHTTPClient(logger *log.Logger) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMin = 100 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.RetryMax = 3
	retryClient.Logger = nil
	if logger != nil {
		retryClient.Logger = logger
	}

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(tracing.SpanNameFormatter),
	)
	return stdClient
}

const todoFields = "id task completed"

// Todos lists every todo in insertion order.
func (c Client) Todos(ctx context.Context) ([]Todo, error) {
	var data struct {
		Todos []Todo `json:"todos"`
	}
	err := c.do(ctx, "query { todos { "+todoFields+" } }", nil, &data)
	return data.Todos, err
}

// ActiveTodos calls getActiveTodos, which lists the completed todos.
func (c Client) ActiveTodos(ctx context.Context) ([]Todo, error) {
	var data struct {
		GetActiveTodos []Todo `json:"getActiveTodos"`
	}
	err := c.do(ctx, "query { getActiveTodos { "+todoFields+" } }", nil, &data)
	return data.GetActiveTodos, err
}

// AddTodo creates a todo and returns it with its generated id.
func (c Client) AddTodo(ctx context.Context, task string, completed bool) (Todo, error) {
	var data struct {
		AddTodo Todo `json:"addTodo"`
	}
	err := c.do(ctx,
		"mutation ($task: String!, $completed: Boolean!) { addTodo(task: $task, completed: $completed) { "+todoFields+" } }",
		map[string]any{"task": task, "completed": completed},
		&data,
	)
	return data.AddTodo, err
}

// UpdateTodo marks the todo as completed and returns the server message.
func (c Client) UpdateTodo(ctx context.Context, id string) (string, error) {
	var data struct {
		UpdateTodo *string `json:"updateTodo"`
	}
	err := c.do(ctx,
		"mutation ($id: String) { updateTodo(id: $id) }",
		map[string]any{"id": id},
		&data,
	)
	if err != nil || data.UpdateTodo == nil {
		return "", err
	}
	return *data.UpdateTodo, nil
}

// DeleteTodo removes the todo and returns it, or nil when no todo has that id.
func (c Client) DeleteTodo(ctx context.Context, id string) (*Todo, error) {
	var data struct {
		DeleteTodo *Todo `json:"deleteTodo"`
	}
	err := c.do(ctx,
		"mutation ($id: String) { deleteTodo(id: $id) { "+todoFields+" } }",
		map[string]any{"id": id},
		&data,
	)
	return data.DeleteTodo, err
}

func (c Client) do(ctx context.Context, query string, variables map[string]any, data any) error {
	body, err := json.Marshal(struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}{
		Query:     query,
		Variables: variables,
	})
	if err != nil {
		return fmt.Errorf("client: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("client: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []GraphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return &ResponseError{Errors: envelope.Errors}
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return errors.New("client: empty response data")
	}
	if err := json.Unmarshal(envelope.Data, data); err != nil {
		return fmt.Errorf("client: decode data: %w", err)
	}
	return nil
}
