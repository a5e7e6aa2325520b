// Package decoder decodes 32-bit RISC-V instruction words. The opcode
// list and the Decode function are generated from the encoding tables in
// ../opcodes.
package decoder

import "fmt"

//go:generate go run ../cmd/rvdecodegen -q -dir ../opcodes -t decode.go.tmpl -o decode_gen.go

// Inst is a decoded instruction. Fields the instruction has no operand
// for are zero.
type Inst struct {
	Opcode Opcode
	Rd     uint32
	Rs1    uint32
	Rs2    uint32
	Imm    int32
}

func (o Opcode) String() string {
	if int(o) >= len(opcodeNames) {
		return fmt.Sprintf("Opcode(%d)", o)
	}
	return opcodeNames[o]
}

func (i Inst) String() string {
	return fmt.Sprintf("%s rd=x%d rs1=x%d rs2=x%d imm=%d", i.Opcode, i.Rd, i.Rs1, i.Rs2, i.Imm)
}

// bits returns word[top:bottom], shifted down to bit 0.
func bits(word uint32, top, bottom uint) uint32 {
	return (word >> bottom) & (1<<(top-bottom+1) - 1)
}

// signExtend treats the low width bits of v as a two's complement value.
func signExtend(v uint32, width uint) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}

func immI(word uint32) int32 {
	return int32(word) >> 20
}

func immS(word uint32) int32 {
	return signExtend(bits(word, 31, 25)<<5|bits(word, 11, 7), 12)
}

func immB(word uint32) int32 {
	v := bits(word, 31, 31)<<12 |
		bits(word, 7, 7)<<11 |
		bits(word, 30, 25)<<5 |
		bits(word, 11, 8)<<1
	return signExtend(v, 13)
}

func immU(word uint32) int32 {
	return int32(word & 0xfffff000)
}

func immJ(word uint32) int32 {
	v := bits(word, 31, 31)<<20 |
		bits(word, 19, 12)<<12 |
		bits(word, 20, 20)<<11 |
		bits(word, 30, 21)<<1
	return signExtend(v, 21)
}
