package httpjson

import (
	"net/http"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		code codes.Code
		want int
	}{
		{codes.OK, http.StatusOK},
		{codes.InvalidArgument, http.StatusBadRequest},
		{codes.NotFound, http.StatusNotFound},
		{codes.AlreadyExists, http.StatusConflict},
		{codes.Aborted, http.StatusConflict},
		{codes.PermissionDenied, http.StatusForbidden},
		{codes.Unauthenticated, http.StatusUnauthorized},
		{codes.ResourceExhausted, http.StatusTooManyRequests},
		{codes.FailedPrecondition, http.StatusPreconditionFailed},
		{codes.Unimplemented, http.StatusNotImplemented},
		{codes.Unavailable, http.StatusServiceUnavailable},
		{codes.DeadlineExceeded, http.StatusRequestTimeout},
		{codes.Canceled, http.StatusRequestTimeout},
		{codes.OutOfRange, http.StatusRequestedRangeNotSatisfiable},
		{codes.Internal, http.StatusInternalServerError},
		{codes.Unknown, http.StatusInternalServerError},
		{codes.DataLoss, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusCode(tc.code); got != tc.want {
			t.Errorf("StatusCode(%v) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestCodeName(t *testing.T) {
	cases := []struct {
		code codes.Code
		want string
	}{
		{codes.OK, "OK"},
		{codes.InvalidArgument, "INVALID_ARGUMENT"},
		{codes.NotFound, "NOT_FOUND"},
		{codes.DeadlineExceeded, "DEADLINE_EXCEEDED"},
		{codes.FailedPrecondition, "FAILED_PRECONDITION"},
		{codes.Unauthenticated, "UNAUTHENTICATED"},
	}
	for _, tc := range cases {
		if got := CodeName(tc.code); got != tc.want {
			t.Errorf("CodeName(%v) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
