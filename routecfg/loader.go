package routecfg

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a routes YAML file from the given path. It
// returns the validated file or an error if the file cannot be read,
// parsed, or validated.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("routes file path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("routes file does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to stat routes file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("routes path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read routes file: %w", err)
	}

	return Parse(data)
}

// Parse parses and validates routes YAML data.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse routes YAML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid routes file: %w", err)
	}
	return &f, nil
}
