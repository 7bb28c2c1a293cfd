package g2h

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const greeterProto = `
syntax = "proto3";
package g2htesting;

option go_package = "github.com/juspay/g2h/g2htesting";

enum PaymentStatus {
  SUCCESS = 0;
  PENDING = 1;
  FAILURE = 2;
}

message HelloRequest {
  string name = 1;
  PaymentStatus payment_status = 2;
  int32 code = 3;
}

message HelloReply {
  string message = 1;
}

service Greeter {
  rpc SayHello(HelloRequest) returns (HelloReply);
}
`

func TestGenerate(t *testing.T) {
	fds := parseFiles(t, map[string]string{"test.proto": greeterProto}, "test.proto")

	gen := NewGenerator(Options{EnableStringEnums: true})
	files, err := gen.Generate(fds)
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "test.g2h.go", f.Name)

	src := string(f.Contents)
	assert.Contains(t, src, "// Code generated by protoc-gen-g2h. DO NOT EDIT.")
	assert.Contains(t, src, "package g2htesting")

	// route construction
	assert.Contains(t, src, "func GreeterHandler(srv GreeterServer, opts ...httpjson.HandlerOption) *mux.Router")
	assert.Contains(t, src, `r.Handle("/g2htesting.Greeter/SayHello"`)
	assert.Contains(t, src, "&Greeter_ServiceDesc.Methods[0]")
	assert.Contains(t, src, `httpjson.WithResponsePruning(g2hJSONInfo, "g2htesting.HelloReply")`)

	// error envelope
	assert.Contains(t, src, "func writeRPCError(w http.ResponseWriter, st *status.Status)")

	// enum codecs
	assert.Contains(t, src, "func serialize_hello_request_payment_status_as_string(v int32) interface{}")
	assert.Contains(t, src, "httpjson.SerializeEnum(v, PaymentStatus_name)")

	// omission table
	assert.Contains(t, src, `"g2htesting.HelloRequest": {`)
	assert.Contains(t, src, `"message": true`)
}

func TestGenerateWithoutStringEnums(t *testing.T) {
	fds := parseFiles(t, map[string]string{"test.proto": greeterProto}, "test.proto")

	files, err := NewGenerator(Options{}).Generate(fds)
	require.NoError(t, err)
	require.Len(t, files, 1)

	src := string(files[0].Contents)
	assert.Contains(t, src, "func GreeterHandler")
	assert.NotContains(t, src, "serialize_")
	assert.NotContains(t, src, "g2hJSONInfo")
	assert.NotContains(t, src, "WithResponsePruning")
}

func TestGenerateDeterministic(t *testing.T) {
	fds := parseFiles(t, map[string]string{"test.proto": greeterProto}, "test.proto")

	first, err := NewGenerator(Options{EnableStringEnums: true}).Generate(fds)
	require.NoError(t, err)
	second, err := NewGenerator(Options{EnableStringEnums: true}).Generate(fds)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateEnvelopeOncePerPackage(t *testing.T) {
	files := map[string]string{
		"a.proto": `
syntax = "proto3";
package multi;
message AReq { string q = 1; }
message AResp { string r = 1; }
service AService {
  rpc Do(AReq) returns (AResp);
}
`,
		"b.proto": `
syntax = "proto3";
package multi;
message BReq { string q = 1; }
message BResp { string r = 1; }
service BService {
  rpc Do(BReq) returns (BResp);
}
`,
	}
	fds := parseFiles(t, files, "a.proto", "b.proto")

	out, err := NewGenerator(Options{}).Generate(fds)
	require.NoError(t, err)
	require.Len(t, out, 2)

	envelopes := 0
	for _, f := range out {
		if strings.Contains(string(f.Contents), "type rpcErrorEnvelope struct") {
			envelopes++
		}
	}
	assert.Equal(t, 1, envelopes, "the error envelope must be emitted exactly once per package")
}

func TestGenerateDeclaresJSONInfoForIntOnlyMessages(t *testing.T) {
	// No message in this file contributes an omission entry, but the route
	// still wires response pruning, so the (empty) table must be declared or
	// the output would not compile.
	files := map[string]string{
		"ints.proto": `
syntax = "proto3";
package ints;
message Num { int32 n = 1; }
service Counter {
  rpc Bump(Num) returns (Num);
}
`,
	}
	fds := parseFiles(t, files, "ints.proto")

	out, err := NewGenerator(Options{EnableStringEnums: true}).Generate(fds)
	require.NoError(t, err)
	require.Len(t, out, 1)

	src := string(out[0].Contents)
	assert.Contains(t, src, `httpjson.WithResponsePruning(g2hJSONInfo, "ints.Num")`)
	assert.Contains(t, src, "var g2hJSONInfo = map[string]httpjson.MessageJSONInfo{}")
}

func TestGenerateJSONInfoCoversWholePackage(t *testing.T) {
	// The service and the messages with omission entries live in different
	// files of the same package. The single emitted table must cover both.
	files := map[string]string{
		"svc.proto": `
syntax = "proto3";
package split;
import "types.proto";
message Ping { int32 n = 1; }
service Splitter {
  rpc Do(Ping) returns (Reply);
}
`,
		"types.proto": `
syntax = "proto3";
package split;
message Reply { string note = 1; }
`,
	}
	fds := parseFiles(t, files, "svc.proto", "types.proto")

	out, err := NewGenerator(Options{EnableStringEnums: true}).Generate(fds)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	declarations := 0
	var combined strings.Builder
	for _, f := range out {
		src := string(f.Contents)
		combined.WriteString(src)
		if strings.Contains(src, "var g2hJSONInfo = map[string]httpjson.MessageJSONInfo{") {
			declarations++
		}
	}
	assert.Equal(t, 1, declarations, "the omission table must be declared exactly once per package")
	assert.Contains(t, combined.String(), `"split.Reply": {`)
	assert.Contains(t, combined.String(), `"note": true`)
}

func TestGenerateNothingToDo(t *testing.T) {
	files := map[string]string{
		"empty.proto": `
syntax = "proto3";
package quiet;
message Untouched { int32 n = 1; }
`,
	}
	fds := parseFiles(t, files, "empty.proto")

	out, err := NewGenerator(Options{}).Generate(fds)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBuildServiceSkipsStreaming(t *testing.T) {
	files := map[string]string{
		"stream.proto": `
syntax = "proto3";
package streams;
message M { string s = 1; }
service Mixed {
  rpc First(M) returns (M);
  rpc Down(M) returns (stream M);
  rpc Second(M) returns (M);
  rpc Up(stream M) returns (M);
}
`,
	}
	fds := parseFiles(t, files, "stream.proto")
	sd := fds[0].FindService("streams.Mixed")
	require.NotNil(t, sd)

	svc := buildService(sd, false, zap.NewNop())
	require.Len(t, svc.Methods, 2)

	// indices must line up with a ServiceDesc.Methods table, which holds
	// only unary methods in declaration order
	assert.Equal(t, "/streams.Mixed/First", svc.Methods[0].Path)
	assert.Equal(t, 0, svc.Methods[0].Index)
	assert.Equal(t, "/streams.Mixed/Second", svc.Methods[1].Path)
	assert.Equal(t, 1, svc.Methods[1].Index)
}

func TestOutputFileName(t *testing.T) {
	assert.Equal(t, "api/v1/service.g2h.go", outputFileName("api/v1/service.proto"))
}

func TestGoPackageName(t *testing.T) {
	cases := []struct {
		goPkg    string
		protoPkg string
		want     string
	}{
		{"github.com/juspay/g2h/g2htesting", "g2htesting", "g2htesting"},
		{"github.com/x/y;custom", "z", "custom"},
		{"", "ucs.v2", "ucs_v2"},
		{"plainpkg", "x", "plainpkg"},
	}
	for _, tc := range cases {
		proto := "syntax = \"proto3\";\npackage " + tc.protoPkg + ";\n"
		if tc.goPkg != "" {
			proto += "option go_package = \"" + tc.goPkg + "\";\n"
		}
		fds := parseFiles(t, map[string]string{"p.proto": proto}, "p.proto")
		assert.Equal(t, tc.want, goPackageName(fds[0]), "go_package=%q package=%q", tc.goPkg, tc.protoPkg)
	}
}
