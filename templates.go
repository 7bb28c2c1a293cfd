package g2h

import (
	"strings"
	"text/template"
)

// Generated code is produced by explicit text templates rendered with the
// data computed by the extractor, annotator and route builder. Each fragment
// below is appended to the per-file output buffer and the whole buffer is
// gofmt-validated before it is returned, so a template bug fails the build
// instead of emitting code that does not compile.

var headerTemplate = template.Must(template.New("header").Parse(
	`// Code generated by protoc-gen-g2h. DO NOT EDIT.
// source: {{.Source}}

package {{.GoPackage}}

import (
{{- if .NeedsHTTP}}
	"net/http"
{{end}}
{{- if .NeedsMux}}
	"github.com/gorilla/mux"
{{- end}}
{{- if .NeedsStatus}}
	"google.golang.org/grpc/status"
{{- end}}

	"github.com/juspay/g2h/httpjson"
)
`))

// envelopeTemplate renders the uniform JSON error body for a package. It is
// emitted once per proto package, not once per route; every route function in
// the package routes failures through writeRPCError.
var envelopeTemplate = template.Must(template.New("envelope").Parse(`
// rpcErrorDetail carries the translated status of a failed call.
type rpcErrorDetail struct {
	Code    string ` + "`" + `json:"code"` + "`" + `
	Message string ` + "`" + `json:"message"` + "`" + `
}

// rpcErrorEnvelope is the JSON error body shared by every HTTP route in this
// package.
type rpcErrorEnvelope struct {
	Error rpcErrorDetail ` + "`" + `json:"error"` + "`" + `
}

func writeRPCError(w http.ResponseWriter, st *status.Status) {
	httpjson.WriteStatus(w, st, func(code, msg string) interface{} {
		return rpcErrorEnvelope{Error: rpcErrorDetail{Code: code, Message: msg}}
	})
}
`))

// enumCodecTemplate renders the dedicated function pair for one enum field
// binding. Every function is bound to the generated name/value maps of the
// field's declared enum type, so a value shared by several enums always maps
// to the symbolic name of the enum this particular field declares.
var enumCodecTemplate = template.Must(template.New("enumCodec").Parse(`
{{- if eq .Card "Single"}}
func serialize_{{.FieldID}}_as_string(v int32) interface{} {
	return httpjson.SerializeEnum(v, {{.EnumIdent}}_name)
}

func deserialize_{{.FieldID}}_from_string(data []byte) (int32, error) {
	return httpjson.DeserializeEnum(data, {{.EnumIdent}}_value, {{printf "%q" .EnumTypePath}})
}
{{- else if eq .Card "Option"}}
func serialize_option_{{.FieldID}}_as_string(v *int32) interface{} {
	return httpjson.SerializeOptionEnum(v, {{.EnumIdent}}_name)
}

func deserialize_option_{{.FieldID}}_from_string(data []byte) (*int32, error) {
	return httpjson.DeserializeOptionEnum(data, {{.EnumIdent}}_value, {{printf "%q" .EnumTypePath}})
}
{{- else}}
func serialize_repeated_{{.FieldID}}_as_string(vs []int32) []interface{} {
	return httpjson.SerializeRepeatedEnum(vs, {{.EnumIdent}}_name)
}

func deserialize_repeated_{{.FieldID}}_from_string(data []byte) ([]int32, error) {
	return httpjson.DeserializeRepeatedEnum(data, {{.EnumIdent}}_value, {{printf "%q" .EnumTypePath}})
}
{{- end}}
`))

// jsonInfoTemplate renders the per-package omission table consumed by the
// runtime marshaler. Map literals are rendered in sorted key order so output
// is reproducible run to run.
var jsonInfoTemplate = template.Must(template.New("jsonInfo").Parse(`
// g2hJSONInfo records, per message, which fields are dropped from JSON output
// when they are absent or empty.
var g2hJSONInfo = map[string]httpjson.MessageJSONInfo{
{{- range .Messages}}
	{{printf "%q" .FullName}}: {
{{- if .OmitEmpty}}
		OmitEmpty: map[string]bool{ {{range .OmitEmpty}}{{printf "%q" .}}: true, {{end}}},
{{- end}}
{{- if .MessageFields}}
		MessageFields: map[string]string{ {{range .MessageFields}}{{printf "%q" .Field}}: {{printf "%q" .Type}}, {{end}}},
{{- end}}
	},
{{- end}}
}
`))

// routeTemplate renders the route-construction function for one service: one
// POST route per unary method at the literal path /{package}.{Service}/{Method}.
// The handler value is captured by interface, shared across concurrent
// requests; the implementation is responsible for its own synchronization.
var routeTemplate = template.Must(template.New("route").Parse(`
// {{.GoName}}Handler returns an HTTP router that exposes every unary method
// of {{.FullName}} as a POST endpoint accepting and producing JSON bodies.
func {{.GoName}}Handler(srv {{.GoName}}Server, opts ...httpjson.HandlerOption) *mux.Router {
	opts = append(opts, httpjson.WithErrorWriter(writeRPCError))
	r := mux.NewRouter()
{{- range .Methods}}
	r.Handle({{printf "%q" .Path}}, httpjson.HandleMethod(srv, {{printf "%q" $.FullName}}, &{{$.GoName}}_ServiceDesc.Methods[{{.Index}}], {{if .PruneRoot}}append(opts, httpjson.WithResponsePruning(g2hJSONInfo, {{printf "%q" .PruneRoot}}))...{{else}}opts...{{end}})).Methods(http.MethodPost)
{{- end}}
	return r
}
`))

func render(t *template.Template, data interface{}) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
