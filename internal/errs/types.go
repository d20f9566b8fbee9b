package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// ProviderError is an upstream reports-API failure. Status is the HTTP
// status to relay; Transient marks outages (timeouts, unreachable API) as
// opposed to key/permission problems.
type ProviderError struct {
	ErrorMessage
	Status    int
	Transient bool
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewProviderError(status int, message string, transient bool) *ProviderError {
	return &ProviderError{
		ErrorMessage: ErrorMessage{Message: message},
		Status:       status,
		Transient:    transient,
	}
}
