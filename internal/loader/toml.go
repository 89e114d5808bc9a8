package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/vk/inigen/internal/config"
	"github.com/vk/inigen/internal/ctxlog"
)

// tomlLoader loads TOML documents. The decoder yields Go maps, so source
// order is not recoverable; sections and keys are emitted in lexical order,
// which is deterministic across runs.
type tomlLoader struct{}

// NewTOML returns a loader for TOML documents.
func NewTOML() Loader {
	return &tomlLoader{}
}

func (l *tomlLoader) Load(ctx context.Context, path string) (*config.Map, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	m := config.NewMap()
	for _, name := range names {
		if table, ok := raw[name].(map[string]any); ok {
			sec := m.AddSection(name)
			keys := make([]string, 0, len(table))
			for k := range table {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				sec.Set(k, tomlText(table[k]))
			}
			continue
		}
		m.AddScalar(name, tomlText(raw[name]))
	}
	logger.Debug("TOML document translated.", "path", path, "entries", m.Len())
	return m, nil
}

// tomlText renders a decoded TOML value in its textual form. Arrays and
// nested tables flatten to one line of JSON rather than expanding.
func tomlText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		// Covers toml.LocalDate, LocalTime and LocalDateTime.
		return x.String()
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	}
}
