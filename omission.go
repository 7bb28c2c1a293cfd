package g2h

import (
	"sort"

	"github.com/jhump/protoreflect/desc"
	"google.golang.org/protobuf/types/descriptorpb"
)

// The omission annotator decides, per field, whether a present-but-empty
// value is dropped from JSON output. The decisions are emitted as a
// per-package table that the runtime marshaler applies after encoding.
//
// The rule: explicit-optional fields and label-optional message fields are
// omitted when absent, and plain (non-repeated) string fields are omitted
// when the string is empty. Nothing else is annotated, so zero integers and
// zero enum values always appear in output.

type fieldTypeLink struct {
	Field string
	Type  string
}

type messageJSONData struct {
	FullName      string
	OmitEmpty     []string
	MessageFields []fieldTypeLink
}

// omitWhenEmpty is the per-field decision.
func omitWhenEmpty(fld *desc.FieldDescriptor) bool {
	if fld.AsFieldDescriptorProto().GetProto3Optional() {
		return true
	}
	if fld.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED {
		return false
	}
	switch fld.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		return fld.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return true
	default:
		return false
	}
}

// buildJSONInfo computes the omission table for every message in fd,
// including nested messages. Entries are sorted by message name and field
// name so the rendered table is deterministic.
func buildJSONInfo(fd *desc.FileDescriptor) []messageJSONData {
	var out []messageJSONData
	var walk func(md *desc.MessageDescriptor)
	walk = func(md *desc.MessageDescriptor) {
		if md.IsMapEntry() {
			return
		}
		data := messageJSONData{FullName: md.GetFullyQualifiedName()}
		for _, fld := range md.GetFields() {
			if omitWhenEmpty(fld) {
				data.OmitEmpty = append(data.OmitEmpty, fld.GetName())
			}
			if fld.GetType() == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE &&
				fld.GetLabel() != descriptorpb.FieldDescriptorProto_LABEL_REPEATED &&
				!fld.GetMessageType().IsMapEntry() {
				data.MessageFields = append(data.MessageFields, fieldTypeLink{
					Field: fld.GetName(),
					Type:  fld.GetMessageType().GetFullyQualifiedName(),
				})
			}
		}
		if len(data.OmitEmpty) > 0 || len(data.MessageFields) > 0 {
			sort.Strings(data.OmitEmpty)
			sort.Slice(data.MessageFields, func(i, j int) bool {
				return data.MessageFields[i].Field < data.MessageFields[j].Field
			})
			out = append(out, data)
		}
		for _, nested := range md.GetNestedMessageTypes() {
			walk(nested)
		}
	}
	for _, md := range fd.GetMessageTypes() {
		walk(md)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out
}
