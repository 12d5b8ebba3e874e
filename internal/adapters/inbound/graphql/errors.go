package graphql

import (
	"errors"

	"github.com/cleitonmarx/todoql/internal/domain"
)

const (
	codeBadUserInput = "BAD_USER_INPUT"
	codeInternal     = "INTERNAL_SERVER_ERROR"
)

// resolverError is returned by resolvers and rendered with an extensions.code entry.
type resolverError struct {
	message string
	code    string
}

func (e resolverError) Error() string {
	return e.message
}

// Extensions is read by the GraphQL engine when building the response error.
func (e resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.code,
	}
}

// toResolverError maps use case errors to client-facing errors.
// Unexpected errors are logged and their details withheld from the response.
func (s *TodoGraphQLServer) toResolverError(field string, err error) error {
	var validationErr domain.ValidationErr
	if errors.As(err, &validationErr) {
		return resolverError{message: validationErr.Error(), code: codeBadUserInput}
	}

	s.Logger.Printf("ERROR TodoGraphQLServer: %s: %v", field, err)
	return resolverError{message: "internal server error", code: codeInternal}
}
