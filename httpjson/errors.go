package httpjson

import (
	"encoding/json"
	"net/http"

	"google.golang.org/grpc/status"
)

// ErrorWriter renders a failed call's status to the HTTP response. Generated
// code installs a per-package writer that wraps the package's error envelope
// type around the translated code and message.
type ErrorWriter func(w http.ResponseWriter, st *status.Status)

// EnvelopeFunc builds the JSON body for a translated status. The code is the
// SCREAMING_SNAKE gRPC code name and message is the status message.
type EnvelopeFunc func(code, message string) interface{}

// WriteStatus translates st to an HTTP status via the fixed code table and
// writes the JSON body produced by build.
func WriteStatus(w http.ResponseWriter, st *status.Status, build EnvelopeFunc) {
	body, err := json.Marshal(build(CodeName(st.Code()), st.Message()))
	if err != nil {
		writeError(w, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(StatusCode(st.Code()))
	w.Write(body)
}

// defaultErrorWriter is used when no per-package envelope has been installed,
// e.g. for services registered directly on a Server. It produces the same
// {"error":{"code","message"}} shape the generated envelopes use.
func defaultErrorWriter(w http.ResponseWriter, st *status.Status) {
	WriteStatus(w, st, func(code, message string) interface{} {
		return map[string]interface{}{
			"error": map[string]string{"code": code, "message": message},
		}
	})
}
