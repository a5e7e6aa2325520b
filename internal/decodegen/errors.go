package decodegen

import (
	"fmt"
)

// UnknownArgumentError is returned for an argument with no extraction rule.
type UnknownArgumentError struct {
	Instruction string
	Arg         string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("instruction %q: unknown argument %q", e.Instruction, e.Arg)
}

// PairingError is returned when one half of a split immediate is declared
// without the other.
type PairingError struct {
	Instruction string
	Arg         string
	Partner     string
}

func (e *PairingError) Error() string {
	return fmt.Sprintf("instruction %q: argument %q requires %q", e.Instruction, e.Arg, e.Partner)
}

// ConflictError is returned when an instruction declares more than one
// immediate, or when two instructions map to the same opcode identifier.
type ConflictError struct {
	Instruction string
	Reason      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("instruction %q: %s", e.Instruction, e.Reason)
}
