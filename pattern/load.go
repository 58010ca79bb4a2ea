package pattern

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the pattern at path. Files ending in .yaml or .yml are decoded
// as YAML; .txt, .life and extension-less files use the text format, with the
// file's base name as the pattern name.
func Load(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: load %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		p, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("pattern: %s: %w", path, err)
		}
		if p.Name == "" {
			p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return p, nil
	case "", ".txt", ".life":
		g, err := ParseText(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("pattern: %s: %w", path, err)
		}
		return &Pattern{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), Grid: g}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}
