package encoding

import (
	"fmt"
)

// WordBits is the width of the only encoding unit the tables describe.
const WordBits = 32

// Bits32 is an instruction word, or a mask or pattern over one.
type Bits32 uint32

func (v Bits32) String() string {
	return fmt.Sprintf("0b%032b", v)
}

// Hex formats v the way generated code spells masks and patterns.
func (v Bits32) Hex() string {
	return fmt.Sprintf("0x%08x", uint32(v))
}

// rangeMask returns the mask with bits top down to bottom (inclusive) set.
func rangeMask(top, bottom uint) Bits32 {
	return Bits32((uint64(1) << (top + 1)) - (uint64(1) << bottom))
}
