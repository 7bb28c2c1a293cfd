package internal

import "github.com/iancoleman/strcase"

// WordCase is the one canonical TypeCase-to-word_case conversion used by both
// the generator and the runtime. Keeping a second converter anywhere else in
// the module is a bug: two implementations that disagree on acronym handling
// produce mismatched identifiers in generated code.
func WordCase(s string) string {
	return strcase.ToSnake(s)
}
