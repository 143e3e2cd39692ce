package apperr

// ValidationError is a request-level rejection that maps to 400. Code is the
// stable machine-readable identifier returned alongside the message.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

const CodeInvalidInput = "INVALID_INPUT"

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
	return &ValidationError{Code: CodeInvalidInput, Message: msg}
}

func NewValidationCode(code, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Code: CodeInvalidInput, Message: msg, Err: err}
}
