package encoding

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPrefix selects the instruction set tables in a directory that
// may hold other files too.
const DefaultPrefix = "rv"

// LoadFile parses the table at path.
func LoadFile(path string) ([]Encoding, error) {
	return loadFile(path, DefaultPrefix)
}

func loadFile(path, prefix string) ([]Encoding, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return parse(r, path, prefix)
}

// LoadDir parses every file below root whose name starts with prefix and
// concatenates the results. Files are visited in lexical path order, so
// the result only depends on the directory contents.
func LoadDir(root, prefix string) ([]Encoding, error) {
	var ret []Encoding

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasPrefix(d.Name(), prefix) {
			return nil
		}

		encs, err := loadFile(path, prefix)
		if err != nil {
			return err
		}
		ret = append(ret, encs...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load tables from %s: %w", root, err)
	}

	return ret, nil
}
