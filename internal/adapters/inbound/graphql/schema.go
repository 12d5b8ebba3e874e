package graphql

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"

	graphql "github.com/graph-gophers/graphql-go"
	gqllog "github.com/graph-gophers/graphql-go/log"
	"github.com/graph-gophers/graphql-go/trace/otel"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

//go:embed schema.graphql
var schemaSDL string

// loadSchemaSDL validates the embedded schema and returns it in canonical form.
func loadSchemaSDL() (string, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{
		Name:  "schema.graphql",
		Input: schemaSDL,
	})
	if err != nil {
		return "", fmt.Errorf("invalid schema: %w", err)
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf, formatter.WithIndent("  ")).FormatSchema(schema)
	return buf.String(), nil
}

// newSchema binds resolver to the embedded schema.
// Query depth is capped at maxDepth and panics raised by resolvers are written to logger.
func newSchema(resolver any, maxDepth int, logger *log.Logger) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, resolver,
		graphql.MaxDepth(maxDepth),
		graphql.Tracer(otel.DefaultTracer()),
		graphql.Logger(gqllog.LoggerFunc(func(_ context.Context, value interface{}) {
			logger.Printf("ERROR TodoGraphQLServer: panic while resolving: %v", value)
		})),
	)
}
