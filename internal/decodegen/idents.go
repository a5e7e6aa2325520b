package decodegen

import (
	"strconv"
	"strings"
	"unicode"
)

// OpcodeIdent returns the enumeration identifier for an instruction name:
// upper case, with characters that can't appear in an identifier replaced
// by underscores ("fence.i" becomes "FENCE_I").
func OpcodeIdent(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		case unicode.IsLetter(r) || r == '_':
			b.WriteString(strings.ToUpper(string(r)))
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// DisplayName returns the quoted upper-case name used for run-time lookup.
func DisplayName(name string) string {
	return strconv.Quote(strings.ToUpper(name))
}
