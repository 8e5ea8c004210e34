package exceptions

import (
	"class-planner-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

// Kind groups errors by how the wizard reacts to them.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindTransport    Kind = "transport"
	KindProtocol     Kind = "protocol"
	KindConflict     Kind = "conflict"
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindInternal     Kind = "internal"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	Kind          Kind       `json:"kind,omitempty"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err (which may be nil) and records the caller.
// Wrapping another CustomError keeps its locations so the whole path is logged.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          kindFromStatus(statusCode),
		Locations:     []Location{getLocation(3)},
		cause:         err,
	}
	if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		var inner *CustomError
		if errors.As(err, &inner) {
			customErr.Locations = append(customErr.Locations, inner.Locations...)
		}
	}
	return customErr
}

func (e *CustomError) withKind(kind Kind) *CustomError {
	e.Kind = kind
	return e
}

// KindOf reports the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.Kind != "" {
		return customErr.Kind
	}
	return KindInternal
}

// ClientMessageOf returns the message safe to show to the user.
func ClientMessageOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}

func kindFromStatus(statusCode int) Kind {
	switch statusCode {
	case constvars.StatusBadRequest, constvars.StatusUnprocessableEntity:
		return KindValidation
	case constvars.StatusUnauthorized:
		return KindUnauthorized
	case constvars.StatusNotFound:
		return KindNotFound
	case constvars.StatusConflict, constvars.StatusTooManyRequests:
		return KindConflict
	case constvars.StatusBadGateway, constvars.StatusGatewayTimeout, constvars.StatusServiceUnavailable:
		return KindTransport
	default:
		return KindInternal
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
