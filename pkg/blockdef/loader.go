package blockdef

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Loader reads block-definition files from an assets directory and caches
// parsed results per file name.
type Loader struct {
	assetsPath string
	fileCache  map[string]*File
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		fileCache:  make(map[string]*File),
	}
}

// Load parses the named definitions file (without extension) under the
// assets directory, e.g. Load("blocks") reads <assets>/blocks.json.
func (l *Loader) Load(name string) (*File, error) {
	if f, ok := l.fileCache[name]; ok {
		return f, nil
	}

	path := filepath.Join(l.assetsPath, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read block definitions: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("could not unmarshal block definitions json: %w", err)
	}

	seen := make(map[string]bool, len(file.Blocks))
	for _, def := range file.Blocks {
		if def.Name == "" {
			return nil, fmt.Errorf("block definition with empty name in %s", path)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate block definition %q in %s", def.Name, path)
		}
		seen[def.Name] = true
	}

	l.fileCache[name] = &file
	return &file, nil
}

// ParseTint converts a hex RRGGBB tint string to its packed color value.
// An empty string parses to 0 (no tint).
func ParseTint(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid tint color %q: %w", s, err)
	}
	return uint32(v), nil
}
