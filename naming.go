package g2h

import (
	"strings"

	"github.com/juspay/g2h/internal"
)

// enumModuleSep separates message-name segments in a resolved enum type path.
// The separator is part of the generated deserializer error text, so changing
// it is a wire-visible change for clients that match on error messages.
const enumModuleSep = "::"

// wordCase converts a TypeCase identifier to word_case. Every identifier that
// ends up in generated code (field IDs, message path segments, status code
// names) must go through this one function, which delegates to the module's
// canonical converter in internal. Consecutive uppercase runs are treated as
// one word: "XMLHttpRequest" becomes "xml_http_request", "APIKey" becomes
// "api_key", "AB" becomes "ab".
func wordCase(s string) string {
	return internal.WordCase(s)
}

// resolveEnumTypePath resolves a dotted enum type reference into the path the
// generated code will use to reach the enum.
//
// A bare name is returned unchanged. A two-segment reference is a
// package-level enum, so only the enum name is kept. With three or more
// segments, every segment between the package and the enum name that starts
// with an uppercase letter is treated as an enclosing message: those segments
// are word-cased and joined with "::", and the enum name is appended.
// Lowercase segments are package sub-components and are ignored, so
// "ucs.v2.Currency" resolves to just "Currency" while "pkg.Outer.Inner.Status"
// resolves to "outer::inner::Status".
func resolveEnumTypePath(typeRef string) string {
	if typeRef == "" || !strings.Contains(typeRef, ".") {
		return typeRef
	}

	parts := strings.Split(typeRef, ".")
	enumName := parts[len(parts)-1]
	if len(parts) == 2 {
		return enumName
	}

	var path []string
	for _, seg := range parts[1 : len(parts)-1] {
		if isMessageSegment(seg) {
			path = append(path, wordCase(seg))
		}
	}
	if len(path) == 0 {
		return enumName
	}
	return strings.Join(path, enumModuleSep) + enumModuleSep + enumName
}

// isMessageSegment reports whether a path segment names a message type rather
// than a package sub-component. Descriptor type references don't distinguish
// the two, but proto style makes message names TypeCase and package components
// lowercase, so the first character decides.
func isMessageSegment(seg string) bool {
	if seg == "" {
		return false
	}
	c := seg[0]
	return c >= 'A' && c <= 'Z'
}
