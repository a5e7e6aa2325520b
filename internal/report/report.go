// Package report prints the loaded encoding model for humans.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/apparentlymart/rvdecodegen/internal/encoding"
)

// Summary writes a table of encs in load order, followed by the number of
// instructions per extension.
func Summary(w io.Writer, encs []encoding.Encoding) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Ext", "Mask", "Pattern", "Args", "Source"})

	perExt := make(map[string]int)
	for i, enc := range encs {
		t.AppendRow(table.Row{
			i + 1,
			enc.Name,
			enc.Extension,
			enc.Mask.Hex(),
			enc.Pattern.Hex(),
			strings.Join(enc.Args, " "),
			enc.Source.String(),
		})
		perExt[enc.Extension]++
	}

	t.AppendFooter(table.Row{"", "Total", "", "", "", "", len(encs)})
	t.Render()

	exts := make([]string, 0, len(perExt))
	for ext := range perExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		name := ext
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(w, "%s: %d\n", name, perExt[ext])
	}
}

// Dump writes a structural dump of v.
func Dump(w io.Writer, v interface{}) {
	spew.Fdump(w, v)
}
