package httpjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	//lint:ignore SA1019 we use the old v1 package because
	//  we need to support older generated messages
	"github.com/golang/protobuf/proto"
	"google.golang.org/protobuf/encoding/protojson"
)

var (
	jsonMarshaler = protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}

	// Strict by default: unknown fields and unknown enum names are request
	// errors, not values to silently drop.
	jsonUnmarshaler = protojson.UnmarshalOptions{}
)

func marshalMessage(v interface{}) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("%T is not a proto message", v)
	}
	return jsonMarshaler.Marshal(proto.MessageV2(m))
}

func unmarshalMessage(data []byte, v interface{}) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("%T is not a proto message", v)
	}
	return jsonUnmarshaler.Unmarshal(data, proto.MessageV2(m))
}

// MessageJSONInfo describes, for one message type, which JSON fields get
// dropped when absent or empty, and which fields hold nested messages so the
// pruning can recurse. Tables of these are emitted by the generator, one per
// proto package.
type MessageJSONInfo struct {
	// OmitEmpty holds JSON field names omitted when their value is null or
	// the empty string.
	OmitEmpty map[string]bool
	// MessageFields maps JSON field names of singular message-typed fields
	// to the fully-qualified name of the nested message type.
	MessageFields map[string]string
}

// pruneEmpty removes absent/empty fields from an encoded JSON object
// according to the generated table. msgName is the fully-qualified proto name
// of the message the object encodes; unknown messages pass through untouched.
// Re-encoding goes through encoding/json's map marshaling, so field order in
// the pruned output is alphabetical and stable.
func pruneEmpty(data []byte, msgName string, info map[string]MessageJSONInfo) ([]byte, error) {
	mi, ok := info[msgName]
	if !ok {
		return data, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	for k, v := range obj {
		val := string(bytes.TrimSpace(v))
		if mi.OmitEmpty[k] && (val == "null" || val == `""`) {
			delete(obj, k)
			continue
		}
		if nested, ok := mi.MessageFields[k]; ok && val != "null" {
			pruned, err := pruneEmpty(v, nested, info)
			if err != nil {
				return nil, err
			}
			obj[k] = pruned
		}
	}
	return json.Marshal(obj)
}
