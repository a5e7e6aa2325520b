package decodegen

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/set"

	"github.com/apparentlymart/rvdecodegen/internal/encoding"
)

// DefaultSeparator joins the opcode identifiers of the enumeration.
const DefaultSeparator = ", "

// Placeholders holds the three generated blocks a template is expanded
// with.
type Placeholders struct {
	// Opcodes is the enumeration of opcode identifiers.
	Opcodes string
	// Names is the comma separated list of quoted display names.
	Names string
	// Decode is the newline separated list of cases.
	Decode string
}

// Generate builds the placeholders for encs, keeping their order for the
// enumerations and the cases alike. sep joins the opcode identifiers; it
// defaults to DefaultSeparator when empty.
func Generate(encs []encoding.Encoding, sep string) (Placeholders, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	idents := make([]string, 0, len(encs))
	names := make([]string, 0, len(encs))
	cases := make([]string, 0, len(encs))
	seen := set.New[string]()

	for _, enc := range encs {
		c, err := GenerateCase(enc)
		if err != nil {
			return Placeholders{}, fmt.Errorf("%s: %w", enc.Source, err)
		}
		if seen.Contains(c.Opcode) {
			return Placeholders{}, fmt.Errorf("%s: %w", enc.Source, &ConflictError{
				Instruction: enc.Name,
				Reason:      fmt.Sprintf("opcode identifier %s is already in use", c.Opcode),
			})
		}
		seen.Add(c.Opcode)

		idents = append(idents, c.Opcode)
		names = append(names, DisplayName(enc.Name))
		cases = append(cases, c.String())
	}

	return Placeholders{
		Opcodes: strings.Join(idents, sep),
		Names:   strings.Join(names, ", "),
		Decode:  strings.Join(cases, "\n"),
	}, nil
}
