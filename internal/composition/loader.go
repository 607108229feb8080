package composition

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Load loads a composition document from a YAML file.
func Load(path string) (*Composition, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFromReader(bytes.NewReader(raw))
}

// LoadFromReader loads a composition document from an io.Reader. This only
// parses YAML; callers run Validate separately.
func LoadFromReader(r io.Reader) (*Composition, error) {
	var c Composition

	decoder := yaml.NewDecoder(r, yaml.Strict())
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode composition YAML: %w", err)
	}

	return &c, nil
}

// readFile reads a composition file, confining access to the file's
// directory to prevent path traversal through symlinks.
func readFile(path string) ([]byte, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open composition directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open composition: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read composition: %w", err)
	}
	return raw, nil
}
