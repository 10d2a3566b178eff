package delivery

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
)

// Application error codes. They are machine-readable and independent from
// any transport; the http layer maps them to status codes.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// DefaultErrorMessage is returned to clients when the real message
// must not leak (internal failures).
const DefaultErrorMessage = "An internal error has occurred"

// Error is the application error. An Error may wrap another Error,
// building a chain of operations for logging while the outermost
// code and message define the client-facing behaviour.
type Error struct {
	// Machine-readable code. If empty, the code of the wrapped error is used.
	Code string

	// Human-readable message, safe to show to a client.
	Message string

	// Operation that failed, e.g. "OrderUseCase.Complete".
	Op string

	// Wrapped error, if any.
	Err error

	// Optional context for logging.
	Fields map[string]interface{}
}

func (e *Error) Error() string {
	var buf bytes.Buffer

	if e.Op != "" {
		fmt.Fprintf(&buf, "%s: ", e.Op)
	}

	if e.Err != nil {
		buf.WriteString(e.Err.Error())
	} else {
		if e.Code != "" {
			fmt.Fprintf(&buf, "<%s> ", e.Code)
		}
		buf.WriteString(e.Message)
	}

	return buf.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// OpError wraps err with an operation name, keeping its code and message.
func OpError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

// ErrorWithCode overrides the code of err.
func ErrorWithCode(err *Error, code string) *Error {
	err.Code = code
	return err
}

// ErrorCode returns the code of the first error in the chain that carries
// one. Non-application errors report EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	for errors.As(err, &e) {
		if e.Code != "" {
			return e.Code
		}
		if e.Err == nil {
			break
		}
		err = e.Err
	}

	return EINTERNAL
}

// ErrorMessage returns the message of the first error in the chain that
// carries one, or DefaultErrorMessage.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	for errors.As(err, &e) {
		if e.Message != "" {
			return e.Message
		}
		if e.Err == nil {
			break
		}
		err = e.Err
	}

	return DefaultErrorMessage
}

// ErrCodeToHTTPStatus maps an application error to an HTTP status code.
func ErrCodeToHTTPStatus(err *Error) int {
	switch ErrorCode(err) {
	case EINVALID, ECONFLICT:
		return http.StatusBadRequest
	case ENOTFOUND:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
