package g2h

import (
	"strings"

	"github.com/pkg/errors"
)

// codecData is the template input for one binding's function pair.
type codecData struct {
	FieldID      string
	EnumTypePath string
	EnumIdent    string
	Card         string
}

// serializeFuncName and deserializeFuncName report the generated function
// names for a binding. The Option and Repeated cardinalities insert
// "option_" / "repeated_" after the serialize/deserialize prefix.
func serializeFuncName(b fieldBinding) string {
	return "serialize_" + cardInfix(b.card) + b.fieldID + "_as_string"
}

func deserializeFuncName(b fieldBinding) string {
	return "deserialize_" + cardInfix(b.card) + b.fieldID + "_from_string"
}

func cardInfix(c cardinality) string {
	switch c {
	case cardOption:
		return "option_"
	case cardRepeated:
		return "repeated_"
	default:
		return ""
	}
}

// renderEnumCodecs renders the dedicated serialize/deserialize pair for each
// binding. Bindings whose enum lives in a foreign proto package have no
// referencable identifier in the generated package and are skipped; callers
// are expected to have logged those. A binding with an empty field ID means
// the extractor was fed a malformed descriptor, which is fatal.
func renderEnumCodecs(bindings []fieldBinding) (string, error) {
	var sb strings.Builder
	for _, b := range bindings {
		if b.fieldID == "" {
			return "", errors.Errorf("enum field binding for %q has no field identifier", b.enumTypePath)
		}
		if b.enumIdent == "" {
			continue
		}
		frag, err := render(enumCodecTemplate, codecData{
			FieldID:      b.fieldID,
			EnumTypePath: b.enumTypePath,
			EnumIdent:    b.enumIdent,
			Card:         b.card.String(),
		})
		if err != nil {
			return "", errors.Wrapf(err, "rendering codec for field %s", b.fieldID)
		}
		sb.WriteString(frag)
	}
	return sb.String(), nil
}
