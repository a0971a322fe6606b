package params

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFromFile loads a parameter document from a JSON file.
// Fields missing from the file keep their Default values.
func LoadFromFile(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("params: read %s: %w", path, err)
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("params: parse %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// SaveToFile writes the parameter document as indented JSON.
func (p *Parameters) SaveToFile(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("params: create %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
