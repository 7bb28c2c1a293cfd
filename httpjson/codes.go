package httpjson

import (
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/juspay/g2h/internal"
)

// StatusCode translates a gRPC code into the HTTP status used for the JSON
// error response of a failed unary call.
func StatusCode(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded, codes.Canceled:
		return http.StatusRequestTimeout
	case codes.OutOfRange:
		return http.StatusRequestedRangeNotSatisfiable
	default:
		return http.StatusInternalServerError
	}
}

// CodeName renders a gRPC code the way the JSON error envelope spells it:
// the canonical SCREAMING_SNAKE name, e.g. "INVALID_ARGUMENT" or "NOT_FOUND".
func CodeName(code codes.Code) string {
	return strings.ToUpper(internal.WordCase(code.String()))
}
