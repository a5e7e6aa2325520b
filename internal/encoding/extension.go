package encoding

import (
	"path/filepath"
	"strings"
)

// ExtensionFromPath derives the extension a table describes from its file
// name, following the riscv-opcodes naming scheme with the given prefix:
// for "rv", rv_i and rv32_i are both "I", rv_zifencei is "ZIFENCEI". Names
// that don't follow the scheme give "".
func ExtensionFromPath(path, prefix string) string {
	name := filepath.Base(path)
	if !strings.HasPrefix(name, prefix) {
		return ""
	}
	name = name[len(prefix):]

	// An optional base width comes before the extension name.
	name = strings.TrimLeft(name, "0123456789")
	if !strings.HasPrefix(name, "_") {
		return ""
	}
	return strings.ToUpper(name[1:])
}
