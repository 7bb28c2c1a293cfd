package g2h

import (
	"strings"

	"github.com/jhump/protoreflect/desc"
	"google.golang.org/protobuf/types/descriptorpb"
)

// cardinality classifies how many values an enum field holds.
type cardinality int

const (
	cardSingle cardinality = iota
	cardOption
	cardRepeated
)

func (c cardinality) String() string {
	switch c {
	case cardOption:
		return "Option"
	case cardRepeated:
		return "Repeated"
	default:
		return "Single"
	}
}

// fieldBinding ties one enum-typed message field to its declared enum type.
// Each binding produces a dedicated serialize/deserialize function pair, so
// two enums that happen to share integer values can never bleed into each
// other's symbolic names.
type fieldBinding struct {
	// fieldID is the word-cased enclosing message path joined with the field
	// name by underscores, e.g. "conflict_test_request_payment_status". The
	// nesting path makes it unique across the whole file: two fields can only
	// collide if they share both path and name, which the descriptor tree
	// forbids.
	fieldID string
	// enumTypePath is the resolved module path of the enum, e.g.
	// "hello_reply::ResponseStatus". Used in generated error messages.
	enumTypePath string
	// enumIdent is the flattened Go identifier of the enum in the generated
	// package ("HelloReply_ResponseStatus"), used to reference the enum's
	// generated name/value maps. Empty if the enum lives in another proto
	// package and cannot be referenced without an import.
	enumIdent string
	card      cardinality
}

// extractEnumFields walks every message in fd, including nested messages at
// any depth, and returns one binding per enum-typed field. Order is the
// deterministic traversal order: a message's own fields in declaration order,
// then its nested messages in declaration order.
func extractEnumFields(fd *desc.FileDescriptor) []fieldBinding {
	var bindings []fieldBinding
	for _, md := range fd.GetMessageTypes() {
		bindings = append(bindings, enumFieldsFromMessage(md, wordCase(md.GetName()))...)
	}
	return bindings
}

func enumFieldsFromMessage(md *desc.MessageDescriptor, path string) []fieldBinding {
	var bindings []fieldBinding
	for _, fld := range md.GetFields() {
		if fld.GetType() != descriptorpb.FieldDescriptorProto_TYPE_ENUM {
			continue
		}
		en := fld.GetEnumType()
		bindings = append(bindings, fieldBinding{
			fieldID:      path + "_" + wordCase(fld.GetName()),
			enumTypePath: resolveEnumTypePath(en.GetFullyQualifiedName()),
			enumIdent:    enumGoIdent(md.GetFile(), en),
			card:         fieldCardinality(fld),
		})
	}
	for _, nested := range md.GetNestedMessageTypes() {
		if nested.IsMapEntry() {
			continue
		}
		bindings = append(bindings, enumFieldsFromMessage(nested, path+"_"+wordCase(nested.GetName()))...)
	}
	return bindings
}

// fieldCardinality derives the binding cardinality from the descriptor label
// and the explicit-optional flag. Only a true proto3 optional counts as
// Option; a plain scalar with an implicit default is Single.
func fieldCardinality(fld *desc.FieldDescriptor) cardinality {
	switch {
	case fld.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED:
		return cardRepeated
	case fld.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL &&
		fld.AsFieldDescriptorProto().GetProto3Optional():
		return cardOption
	default:
		return cardSingle
	}
}

// enumGoIdent returns the Go identifier protoc-gen-go gives the enum inside
// the package generated for file fd: nesting message names and the enum name
// joined with underscores. Enums declared in a different proto package would
// need a cross-package import, which generated fragments cannot assume, so
// those return "".
func enumGoIdent(fd *desc.FileDescriptor, en *desc.EnumDescriptor) string {
	if en.GetFile().GetPackage() != fd.GetPackage() {
		return ""
	}
	fq := en.GetFullyQualifiedName()
	if pkg := en.GetFile().GetPackage(); pkg != "" {
		fq = strings.TrimPrefix(fq, pkg+".")
	}
	return strings.ReplaceAll(fq, ".", "_")
}
