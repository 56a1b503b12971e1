package utils

import "errors"

var (
	ErrMissingInput       = errors.New("missing input")
	ErrGenerationFailed   = errors.New("generation failed")
	ErrInvalidModelFormat = errors.New("invalid model format")
	ErrInvalidQuizContent = errors.New("invalid quiz content")
)

// ServiceError tags an underlying error with one of the kinds above.
// errors.Is matches the kind; Error returns the underlying text so it can be
// surfaced to clients unchanged.
type ServiceError struct {
	Kind error
	Err  error
}

func (e *ServiceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "service error"
}

func (e *ServiceError) Is(target error) bool {
	return e != nil && e.Kind == target
}

func (e *ServiceError) Unwrap() error { return e.Err }

func NewServiceError(kind, err error) *ServiceError {
	return &ServiceError{Kind: kind, Err: err}
}
