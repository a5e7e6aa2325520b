package decodegen

import (
	"fmt"
	"sort"
)

// Field is a member of the decoded instruction record.
type Field int

const (
	FieldNone Field = iota
	FieldRd
	FieldRs1
	FieldRs2
	FieldImm

	fieldCount
)

var fieldNames = [fieldCount]string{"", "Rd", "Rs1", "Rs2", "Imm"}

// String returns the record member name used in generated code.
func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Rule says how one operand argument is extracted from the word.
type Rule struct {
	Field Field

	// Top and Bottom select a plain bit range, right-justified.
	Top, Bottom uint

	// Helper, if set, names the decoder function that reassembles a
	// scattered immediate; Top and Bottom are then unused.
	Helper string

	// Partner is the other half of a split immediate, which must be
	// declared alongside this one.
	Partner string
}

// Expr returns the Go expression extracting the field from word, or ""
// for arguments that don't populate a field.
func (r Rule) Expr(word string) string {
	switch {
	case r.Field == FieldNone:
		return ""
	case r.Helper != "":
		return fmt.Sprintf("%s(%s)", r.Helper, word)
	default:
		return fmt.Sprintf("bits(%s, %d, %d)", word, r.Top, r.Bottom)
	}
}

// rules is the closed set of arguments a table may declare. The low half
// of each split immediate contributes nothing on its own; the high half
// names the helper that reads both.
var rules = map[string]Rule{
	"rd":  {Field: FieldRd, Top: 11, Bottom: 7},
	"rs1": {Field: FieldRs1, Top: 19, Bottom: 15},
	"rs2": {Field: FieldRs2, Top: 24, Bottom: 20},

	"imm20":  {Field: FieldImm, Helper: "immU"},
	"jimm20": {Field: FieldImm, Helper: "immJ"},
	"imm12":  {Field: FieldImm, Helper: "immI"},

	"imm12hi":  {Field: FieldImm, Helper: "immS", Partner: "imm12lo"},
	"imm12lo":  {Partner: "imm12hi"},
	"bimm12hi": {Field: FieldImm, Helper: "immB", Partner: "bimm12lo"},
	"bimm12lo": {Partner: "bimm12hi"},

	// fence ordering qualifiers
	"fm":   {},
	"pred": {},
	"succ": {},
}

// LookupRule returns the rule for an argument name.
func LookupRule(arg string) (Rule, bool) {
	r, ok := rules[arg]
	return r, ok
}

// Arguments returns every recognized argument name, sorted.
func Arguments() []string {
	ret := make([]string, 0, len(rules))
	for name := range rules {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}
