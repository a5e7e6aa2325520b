// Package decodegen turns instruction encodings into the text of a
// decoder: one mask/pattern test per instruction, returning a record
// whose fields are extracted from the instruction word.
package decodegen

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/set"

	"github.com/apparentlymart/rvdecodegen/internal/encoding"
)

// wordVar is the name of the instruction word in generated code.
const wordVar = "word"

// Case is the generated matcher for one instruction.
type Case struct {
	Opcode  string
	Mask    encoding.Bits32
	Pattern encoding.Bits32

	// Exprs holds the extraction expression of each populated field.
	Exprs [fieldCount]string
}

// GenerateCase builds the matcher for enc. Every argument must have a
// rule, split immediates must be declared in pairs, and at most one
// distinct immediate may be declared. Repeated arguments are allowed.
func GenerateCase(enc encoding.Encoding) (Case, error) {
	c := Case{
		Opcode:  OpcodeIdent(enc.Name),
		Mask:    enc.Mask,
		Pattern: enc.Pattern,
	}

	declared := set.New[string]()
	for _, arg := range enc.Args {
		declared.Add(arg)
	}

	immArg := ""
	for _, arg := range enc.Args {
		rule, ok := LookupRule(arg)
		if !ok {
			return Case{}, &UnknownArgumentError{Instruction: enc.Name, Arg: arg}
		}
		if rule.Partner != "" && !declared.Contains(rule.Partner) {
			return Case{}, &PairingError{Instruction: enc.Name, Arg: arg, Partner: rule.Partner}
		}
		if rule.Field == FieldNone {
			continue
		}

		if rule.Field == FieldImm {
			if immArg != "" && immArg != arg {
				return Case{}, &ConflictError{
					Instruction: enc.Name,
					Reason:      fmt.Sprintf("immediates %q and %q both populate Imm", immArg, arg),
				}
			}
			immArg = arg
		}
		c.Exprs[rule.Field] = rule.Expr(wordVar)
	}

	return c, nil
}

// String renders the case as a Go if statement.
func (c Case) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "if %s&%s == %s {\n", wordVar, c.Mask.Hex(), c.Pattern.Hex())
	fmt.Fprintf(&b, "\treturn Inst{Opcode: %s", c.Opcode)
	for f := FieldNone + 1; f < fieldCount; f++ {
		if c.Exprs[f] == "" {
			continue
		}
		fmt.Fprintf(&b, ", %s: %s", f, c.Exprs[f])
	}
	b.WriteString("}, true\n}")
	return b.String()
}
