package g2h

import (
	"testing"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFiles(t *testing.T, files map[string]string, names ...string) []*desc.FileDescriptor {
	t.Helper()
	p := protoparse.Parser{Accessor: protoparse.FileContentsFromMap(files)}
	fds, err := p.ParseFiles(names...)
	require.NoError(t, err)
	return fds
}

const bankProto = `
syntax = "proto3";
package bank;

enum PaymentStatus {
  SUCCESS = 0;
  PENDING = 1;
  FAILURE = 2;
}

message ConflictTestRequest {
  PaymentStatus first = 1;
  repeated PaymentStatus history = 2;
  optional PaymentStatus maybe = 3;
  message Inner {
    enum Mode {
      OFF = 0;
      ON = 1;
    }
    Mode mode = 1;
  }
  Inner inner = 4;
  map<string, int32> tags = 5;
  string note = 6;
}
`

func TestExtractEnumFields(t *testing.T) {
	fds := parseFiles(t, map[string]string{"bank.proto": bankProto}, "bank.proto")

	got := extractEnumFields(fds[0])
	want := []fieldBinding{
		{
			fieldID:      "conflict_test_request_first",
			enumTypePath: "PaymentStatus",
			enumIdent:    "PaymentStatus",
			card:         cardSingle,
		},
		{
			fieldID:      "conflict_test_request_history",
			enumTypePath: "PaymentStatus",
			enumIdent:    "PaymentStatus",
			card:         cardRepeated,
		},
		{
			fieldID:      "conflict_test_request_maybe",
			enumTypePath: "PaymentStatus",
			enumIdent:    "PaymentStatus",
			card:         cardOption,
		},
		{
			fieldID:      "conflict_test_request_inner_mode",
			enumTypePath: "conflict_test_request::inner::Mode",
			enumIdent:    "ConflictTestRequest_Inner_Mode",
			card:         cardSingle,
		},
	}
	assert.Equal(t, want, got)
}

func TestExtractEnumFieldsForeignPackage(t *testing.T) {
	files := map[string]string{
		"other.proto": `
syntax = "proto3";
package other;
enum Foreign {
  FOREIGN_ZERO = 0;
  FOREIGN_ONE = 1;
}
`,
		"main.proto": `
syntax = "proto3";
package bank;
import "other.proto";
message Holder {
  other.Foreign foreign = 1;
}
`,
	}
	fds := parseFiles(t, files, "main.proto")

	got := extractEnumFields(fds[0])
	require.Len(t, got, 1)
	assert.Equal(t, "holder_foreign", got[0].fieldID)
	assert.Equal(t, "Foreign", got[0].enumTypePath)
	// no referencable identifier without a cross-package import
	assert.Equal(t, "", got[0].enumIdent)
}

func TestFieldCardinalityStrings(t *testing.T) {
	assert.Equal(t, "Single", cardSingle.String())
	assert.Equal(t, "Option", cardOption.String())
	assert.Equal(t, "Repeated", cardRepeated.String())
}
