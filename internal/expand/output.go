package expand

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// FormatGo formats src with gofmt rules when path names a Go file and
// returns it unchanged otherwise.
func FormatGo(path string, src []byte) ([]byte, error) {
	if !strings.HasSuffix(path, ".go") {
		return src, nil
	}
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("generated code for %s does not parse: %w", path, err)
	}
	return out, nil
}

// WriteFile replaces the file at path with data. The data goes to a
// temporary file in the same directory first and is renamed into place,
// so path either keeps its old content or gets all of data.
func WriteFile(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		_ = os.Remove(tmpName) // no-op once renamed
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
