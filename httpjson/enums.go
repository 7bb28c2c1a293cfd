package httpjson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The functions below carry the scalar, optional and repeated semantics that
// generated per-field enum codecs bind to a specific enum's name/value maps.
// Because each generated function closes over exactly one enum's maps, a wire
// integer shared by several enum types always serializes to the symbolic name
// of the enum the field declares.

// SerializeEnum returns the symbolic name for v in the given enum, or v
// itself when the value is unknown, so values added after code generation
// still round-trip.
func SerializeEnum(v int32, names map[int32]string) interface{} {
	if name, ok := names[v]; ok {
		return name
	}
	return v
}

// SerializeOptionEnum is SerializeEnum with an absent state: a nil input
// serializes to JSON null.
func SerializeOptionEnum(v *int32, names map[int32]string) interface{} {
	if v == nil {
		return nil
	}
	return SerializeEnum(*v, names)
}

// SerializeRepeatedEnum applies SerializeEnum element-wise, preserving order.
func SerializeRepeatedEnum(vs []int32, names map[int32]string) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = SerializeEnum(v, names)
	}
	return out
}

// DeserializeEnum decodes a JSON value that is either a symbolic name or a
// wire integer. Unknown names are an error naming the enum and the offending
// string; integers pass through unchecked since wire values outside the known
// range are legal.
func DeserializeEnum(data []byte, values map[string]int32, enumName string) (int32, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, ok := values[s]
		if !ok {
			return 0, fmt.Errorf("unknown value %q for enum %s", s, enumName)
		}
		return v, nil
	}
	var n int32
	if err := json.Unmarshal(data, &n); err == nil {
		return n, nil
	}
	return 0, fmt.Errorf("enum %s: value must be a string or an integer, got %s", enumName, data)
}

// DeserializeOptionEnum is DeserializeEnum where JSON null (or a missing
// value) decodes to absent without error.
func DeserializeOptionEnum(data []byte, values map[string]int32, enumName string) (*int32, error) {
	if isJSONNull(data) {
		return nil, nil
	}
	v, err := DeserializeEnum(data, values, enumName)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DeserializeRepeatedEnum decodes an ordered JSON array of names and/or
// integers. A single unresolvable element fails the whole sequence.
func DeserializeRepeatedEnum(data []byte, values map[string]int32, enumName string) ([]int32, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("enum %s: expected an array: %v", enumName, err)
	}
	out := make([]int32, 0, len(items))
	for _, item := range items {
		v, err := DeserializeEnum(item, values, enumName)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func isJSONNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || string(trimmed) == "null"
}
