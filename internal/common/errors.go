package common

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// internalError hides its cause from clients but keeps it for logs.
type internalError struct {
	msg   string
	cause error
}

func (e *internalError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *internalError) Unwrap() error { return e.cause }

func (e *internalError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, e.msg)
}

// Internal wraps an unexpected store or storage failure.
func Internal(msg string, cause error) error {
	return &internalError{msg: msg, cause: cause}
}

func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

func NotFound(msg string) error {
	return status.Error(codes.NotFound, msg)
}

func PermissionDenied(msg string) error {
	return status.Error(codes.PermissionDenied, msg)
}

func Conflict(msg string) error {
	return status.Error(codes.AlreadyExists, msg)
}

func Unauthorized(msg string) error {
	return status.Error(codes.Unauthenticated, msg)
}

func TooManyRequests(msg string) error {
	return status.Error(codes.ResourceExhausted, msg)
}

// MethodNotAllowed reports a route that exists for other methods.
func MethodNotAllowed(msg string) error {
	return status.Error(codes.Unimplemented, msg)
}

// ValidationError lists every failing field of a request body.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0]
}

func (e *ValidationError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// Code extracts the error kind, treating unknown errors as Internal.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if st, ok := status.FromError(err); ok {
		if st.Code() == codes.Unknown {
			return codes.Internal
		}
		return st.Code()
	}
	return codes.Internal
}

func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.OutOfRange, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is what the client may see for err.
func publicMessage(err error) string {
	code := Code(err)
	if code == codes.Internal {
		var ie *internalError
		if errors.As(err, &ie) {
			return ie.msg
		}
		return "something went wrong"
	}
	st, _ := status.FromError(err)
	return st.Message()
}
