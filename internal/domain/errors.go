package domain

// ValidationErr reports input that violates a use case contract.
type ValidationErr struct {
	message string
}

// NewValidationErr creates a new ValidationErr.
func NewValidationErr(message string) ValidationErr {
	return ValidationErr{message: message}
}

func (e ValidationErr) Error() string {
	return e.message
}

// NotFoundErr reports that no todo matches the requested identifier.
type NotFoundErr struct {
	message string
}

// NewNotFoundErr creates a new NotFoundErr.
func NewNotFoundErr(message string) NotFoundErr {
	return NotFoundErr{message: message}
}

func (e NotFoundErr) Error() string {
	return e.message
}
