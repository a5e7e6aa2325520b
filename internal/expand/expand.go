// Package expand substitutes generated code into a template and writes the
// result.
package expand

import (
	"fmt"
	"os"
	"strings"

	"github.com/apparentlymart/rvdecodegen/internal/decodegen"
)

// Placeholder tokens recognized in templates.
const (
	OpcodePlaceholder = "<<opcode>>"
	NamesPlaceholder  = "<<names>>"
	DecodePlaceholder = "<<decode>>"
)

// Expander produces source text from the generated placeholder values.
type Expander interface {
	Expand(p decodegen.Placeholders) ([]byte, error)
}

// TemplateError is returned for a template that lacks a placeholder.
type TemplateError struct {
	Path        string
	Placeholder string
}

func (e *TemplateError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("template has no %s placeholder", e.Placeholder)
	}
	return fmt.Sprintf("template %s has no %s placeholder", e.Path, e.Placeholder)
}

// Template is an Expander over plain text.
type Template struct {
	text string
}

var _ Expander = (*Template)(nil)

// NewTemplate checks that text has every placeholder. path is only used
// in errors.
func NewTemplate(path, text string) (*Template, error) {
	for _, ph := range []string{OpcodePlaceholder, NamesPlaceholder, DecodePlaceholder} {
		if !strings.Contains(text, ph) {
			return nil, &TemplateError{Path: path, Placeholder: ph}
		}
	}
	return &Template{text: text}, nil
}

// LoadTemplate reads the template at path.
func LoadTemplate(path string) (*Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	return NewTemplate(path, string(b))
}

// Expand replaces every placeholder occurrence. Replacement happens in a
// single pass, so placeholder tokens inside the values are left alone.
func (t *Template) Expand(p decodegen.Placeholders) ([]byte, error) {
	r := strings.NewReplacer(
		OpcodePlaceholder, p.Opcodes,
		NamesPlaceholder, p.Names,
		DecodePlaceholder, p.Decode,
	)
	return []byte(r.Replace(t.text)), nil
}
