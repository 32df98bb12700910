package generation

import "fmt"

// InputError marks a problem with what the client sent. Handlers map it to
// a 400 response carrying Detail.
type InputError struct {
	Detail string
}

func (e *InputError) Error() string {
	return e.Detail
}

// NewInputError builds an InputError from a format string.
func NewInputError(format string, args ...any) *InputError {
	return &InputError{Detail: fmt.Sprintf(format, args...)}
}

// ProcessingError describes a provider payload that could not be turned into
// a stored image. It carries the payload's shape for diagnostics. It is an
// expected outcome, absorbed into the response message rather than failing
// the request.
type ProcessingError struct {
	Stage       string
	PayloadKind string
	PayloadLen  int
	Err         error
}

func (e *ProcessingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed for %s payload (%d bytes): %v", e.Stage, e.PayloadKind, e.PayloadLen, e.Err)
	}
	return fmt.Sprintf("%s failed for %s payload (%d bytes)", e.Stage, e.PayloadKind, e.PayloadLen)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
