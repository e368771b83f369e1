package records

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/areatab/areatab/pkg/constants"
	"github.com/areatab/areatab/pkg/errors"
)

// snapshot is the on-disk YAML document shape for a record set.
type snapshot struct {
	Tables []*Table `yaml:"tables"`
}

// MarshalSnapshot renders the set as a YAML snapshot document.
func MarshalSnapshot(s *Set) ([]byte, error) {
	doc := snapshot{Tables: s.List()}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return data, nil
}

// UnmarshalSnapshot parses a YAML snapshot document into a fresh set.
// Duplicate or empty handles in the document are corruption and fail
// the whole load.
func UnmarshalSnapshot(data []byte) (*Set, error) {
	return unmarshalSnapshot(data, "")
}

func unmarshalSnapshot(data []byte, path string) (*Set, error) {
	var doc snapshot
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	set := NewSet()
	for _, t := range doc.Tables {
		if err := set.Add(t); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// SaveSnapshot writes the set to path as a YAML snapshot, creating
// parent directories as needed.
func SaveSnapshot(s *Set, path string) error {
	data, err := MarshalSnapshot(s)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// LoadSnapshot reads a YAML snapshot from path into a fresh set.
func LoadSnapshot(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("snapshot", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}
	return unmarshalSnapshot(data, path)
}
