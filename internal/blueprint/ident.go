package blueprint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	fferrors "github.com/flaskforge/cli/internal/errors"
)

// Blueprint names are interpolated into generated Python source as
// identifiers, so they must satisfy the identifier grammar and must not be
// reserved words.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var pythonKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// ValidateName checks that a blueprint name is usable as a Python
// identifier.
func ValidateName(name string) error {
	if !identRe.MatchString(name) {
		return fferrors.Wrap(fferrors.ErrInvalidName, fmt.Sprintf("blueprint name %q is not a valid identifier", name))
	}
	if _, ok := pythonKeywords[name]; ok {
		return fferrors.Wrap(fferrors.ErrInvalidName, fmt.Sprintf("blueprint name %q is a reserved word", name))
	}
	return nil
}

// capitalize upper-cases the first letter and lower-cases the rest, matching
// the heading style of the generated child template.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
