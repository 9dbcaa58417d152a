package apperr

// ValidationError blocks a write before any storage call is made.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError marks a requested identifier as absent. The UI renders it
// as an explicit "not found" state, distinct from "still loading".
type NotFoundError struct {
	Resource string
	Err      error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return e.Resource + " not found: " + e.Err.Error()
	}
	return e.Resource + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

func NewNotFoundWrap(resource string, err error) *NotFoundError {
	return &NotFoundError{Resource: resource, Err: err}
}

// UnauthorizedError rejects admin requests with a bad passcode or token.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorized(msg string) *UnauthorizedError {
	return &UnauthorizedError{Message: msg}
}
