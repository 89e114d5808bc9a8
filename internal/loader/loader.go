package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/inigen/internal/config"
)

// ErrTopLevelNotMapping is returned when a source parses successfully but
// its top-level value is not a mapping of section names to values.
var ErrTopLevelNotMapping = errors.New("top-level value is not a mapping")

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the file at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*config.Map, error)
}

// ForFormat returns the loader for an explicitly named input format.
func ForFormat(name string) (Loader, error) {
	switch strings.ToLower(name) {
	case "hcl":
		return NewHCL(), nil
	case "json":
		return NewJSON(), nil
	case "yaml", "yml":
		return NewYAML(), nil
	case "toml":
		return NewTOML(), nil
	default:
		return nil, fmt.Errorf("unsupported input format %q: must be 'hcl', 'json', 'yaml' or 'toml'", name)
	}
}

// ForPath picks a loader based on the path's file extension.
func ForPath(path string) (Loader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		return NewHCL(), nil
	case ".json":
		return NewJSON(), nil
	case ".yaml", ".yml":
		return NewYAML(), nil
	case ".toml":
		return NewTOML(), nil
	default:
		return nil, fmt.Errorf("cannot detect input format of %q: unknown extension %q (use -format to override)", path, ext)
	}
}
