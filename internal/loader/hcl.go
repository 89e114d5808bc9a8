package loader

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/inigen/internal/config"
	"github.com/vk/inigen/internal/ctxlog"
)

// hclLoader loads native HCL files, and JSON files through HCL's JSON
// syntax, into the config model. Both syntaxes share the cty value pipeline.
type hclLoader struct {
	json bool
}

// NewHCL returns a loader for native HCL syntax. Top-level blocks and
// object-valued attributes become sections; scalar attributes become
// non-section entries.
func NewHCL() Loader {
	return &hclLoader{}
}

// NewJSON returns a loader for JSON documents. The top level must be an
// object; object-valued members become sections.
func NewJSON() Loader {
	return &hclLoader{json: true}
}

func (l *hclLoader) Load(ctx context.Context, path string) (*config.Map, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	var file *hcl.File
	var diags hcl.Diagnostics
	if l.json {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %q: %w", path, diags)
	}
	logger.Debug("Source parsed.", "path", path, "json", l.json)

	if syn, ok := file.Body.(*hclsyntax.Body); ok {
		return l.fromSyntaxBody(ctx, syn)
	}
	return l.fromJSONBody(ctx, path, file.Body)
}

// fromSyntaxBody translates a native HCL body. Attributes and blocks are
// interleaved by source position so the output follows the input file.
func (l *hclLoader) fromSyntaxBody(ctx context.Context, body *hclsyntax.Body) (*config.Map, error) {
	logger := ctxlog.FromContext(ctx)
	m := config.NewMap()

	type item struct {
		offset int
		emit   func() error
	}
	var items []item

	for name, attr := range body.Attributes {
		name, attr := name, attr
		items = append(items, item{
			offset: attr.SrcRange.Start.Byte,
			emit: func() error {
				val, diags := attr.Expr.Value(nil)
				if diags.HasErrors() {
					return fmt.Errorf("evaluate attribute %q: %w", name, diags)
				}
				return addCtyEntry(m, name, val)
			},
		})
	}
	for _, block := range body.Blocks {
		block := block
		items = append(items, item{
			offset: block.TypeRange.Start.Byte,
			emit: func() error {
				sec := m.AddSection(block.Type)
				return fillSectionFromBody(ctx, sec, block.Body)
			},
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].offset < items[j].offset })
	for _, it := range items {
		if err := it.emit(); err != nil {
			return nil, err
		}
	}
	logger.Debug("HCL body translated.", "entries", m.Len())
	return m, nil
}

// fillSectionFromBody copies a block's attributes into a section in source
// order. Blocks nested inside a section have no key/value representation
// and are skipped.
func fillSectionFromBody(ctx context.Context, sec *config.Section, body *hclsyntax.Body) error {
	logger := ctxlog.FromContext(ctx)

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("evaluate attribute %q in section %q: %w", attr.Name, sec.Name, diags)
		}
		text, err := ctyText(val)
		if err != nil {
			return fmt.Errorf("render attribute %q in section %q: %w", attr.Name, sec.Name, err)
		}
		sec.Set(attr.Name, text)
	}
	for _, nested := range body.Blocks {
		logger.Warn("Skipping nested block inside section.", "section", sec.Name, "block", nested.Type)
	}
	return nil
}

// fromJSONBody translates a JSON body. The JSON syntax exposes the document
// as attributes, which carry source ranges we sort by to keep the
// document's member order.
func (l *hclLoader) fromJSONBody(ctx context.Context, path string, body hcl.Body) (*config.Map, error) {
	logger := ctxlog.FromContext(ctx)

	attrMap, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%q: %w: %v", path, ErrTopLevelNotMapping, diags)
	}

	attrs := make([]*hcl.Attribute, 0, len(attrMap))
	for _, attr := range attrMap {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].Range.Start.Byte < attrs[j].Range.Start.Byte
	})

	m := config.NewMap()
	for _, attr := range attrs {
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("evaluate member %q: %w", attr.Name, valDiags)
		}
		if err := addCtyEntry(m, attr.Name, val); err != nil {
			return nil, err
		}
	}
	logger.Debug("JSON body translated.", "entries", m.Len())
	return m, nil
}

// addCtyEntry stores a top-level cty value: object- and map-typed values
// become sections, anything else is recorded as a scalar entry.
func addCtyEntry(m *config.Map, name string, val cty.Value) error {
	if t := val.Type(); !val.IsNull() && (t.IsObjectType() || t.IsMapType()) {
		sec := m.AddSection(name)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			text, err := ctyText(v)
			if err != nil {
				return fmt.Errorf("render key %q in section %q: %w", k.AsString(), name, err)
			}
			sec.Set(k.AsString(), text)
		}
		return nil
	}
	text, err := ctyText(val)
	if err != nil {
		return fmt.Errorf("render top-level value %q: %w", name, err)
	}
	m.AddScalar(name, text)
	return nil
}

// ctyText renders a cty value in its textual form. Primitives convert
// through cty's string conversion; anything deeper flattens to one line of
// JSON rather than expanding recursively.
func ctyText(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	if val.Type().IsPrimitiveType() {
		s, err := convert.Convert(val, cty.String)
		if err != nil {
			return "", err
		}
		return s.AsString(), nil
	}
	b, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
