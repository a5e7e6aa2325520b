// Package encoding reads instruction encoding tables: one instruction per
// line, naming the fixed bit fields that identify it and the operand
// fields it carries.
package encoding

import (
	"fmt"
)

// Position is the place in a table file an encoding was read from.
type Position struct {
	Path string
	Line int
}

func (p Position) String() string {
	if p.Path == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.Path, p.Line)
}

// Encoding is one instruction of a table. A word is an instance of the
// instruction if its bits under Mask equal Pattern. Pattern never has bits
// set outside Mask.
type Encoding struct {
	Name    string
	Mask    Bits32
	Pattern Bits32

	// Args are the operand fields in declaration order.
	Args []string

	// Extension is derived from the table file name, e.g. "I" for rv_i.
	Extension string
	Source    Position
}

// Matches reports whether word is an instance of e.
func (e Encoding) Matches(word uint32) bool {
	return Bits32(word)&e.Mask == e.Pattern
}

// Overlaps reports whether some word matches both e and o, which is the
// case when their patterns agree on every bit both masks constrain.
func (e Encoding) Overlaps(o Encoding) bool {
	return (e.Pattern^o.Pattern)&(e.Mask&o.Mask) == 0
}

// Shadows reports whether every word matching o also matches e, so that
// o can never be reached when e is tested first.
func (e Encoding) Shadows(o Encoding) bool {
	return e.Mask&o.Mask == e.Mask && e.Matches(uint32(o.Pattern))
}
