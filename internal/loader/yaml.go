package loader

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/inigen/internal/config"
	"github.com/vk/inigen/internal/ctxlog"
)

// yamlLoader loads YAML documents through the yaml.v3 node API, which is
// the only way to keep the document's mapping order.
type yamlLoader struct{}

// NewYAML returns a loader for YAML documents.
func NewYAML() Loader {
	return &yamlLoader{}
}

func (l *yamlLoader) Load(ctx context.Context, path string) (*config.Map, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	// An empty document has no content node and maps to an empty model.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return config.NewMap(), nil
	}
	root := resolveAlias(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return config.NewMap(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%q: %w: document is a %s", path, ErrTopLevelNotMapping, yamlKindName(root.Kind))
	}

	m := config.NewMap()
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		val := resolveAlias(root.Content[i+1])
		if val.Kind == yaml.MappingNode {
			sec := m.AddSection(name)
			for j := 0; j+1 < len(val.Content); j += 2 {
				text, err := yamlText(resolveAlias(val.Content[j+1]))
				if err != nil {
					return nil, fmt.Errorf("render key %q in section %q: %w", val.Content[j].Value, name, err)
				}
				sec.Set(val.Content[j].Value, text)
			}
			continue
		}
		text, err := yamlText(val)
		if err != nil {
			return nil, fmt.Errorf("render top-level value %q: %w", name, err)
		}
		m.AddScalar(name, text)
	}
	logger.Debug("YAML document translated.", "path", path, "entries", m.Len())
	return m, nil
}

// yamlText renders a value node in its textual form. Scalars keep the exact
// text they had in the source; deeper mappings and sequences flatten to a
// single flow-style line.
func yamlText(n *yaml.Node) (string, error) {
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!null" {
			return "", nil
		}
		return n.Value, nil
	}
	setFlowStyle(n)
	b, err := yaml.Marshal(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// setFlowStyle forces a subtree into flow style so it marshals onto one line.
func setFlowStyle(n *yaml.Node) {
	n.Style = yaml.FlowStyle
	for _, c := range n.Content {
		setFlowStyle(c)
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
