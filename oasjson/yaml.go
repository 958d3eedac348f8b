package oasjson

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/orderedmap"
)

// MarshalYAML renders node as YAML with the same field selection and key
// order as Marshal. Indentation options are ignored.
func MarshalYAML(node model.Node, opts ...Option) ([]byte, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	compact := *cfg
	compact.prefix, compact.indent = "", ""
	data, err := encode(node, &compact)
	if err != nil {
		return nil, err
	}
	tree, err := decodeTree(data, &compact)
	if err != nil {
		return nil, fmt.Errorf("oasjson: re-read encoded JSON: %w", err)
	}
	root, err := treeToYAML(tree)
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("oasjson: render YAML: %w", err)
	}
	return out, nil
}

// UnmarshalYAML decodes a YAML document. It applies the same lenient rules
// as Unmarshal. Key order is kept.
func UnmarshalYAML(data []byte, opts ...Option) (*model.Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	tree, err := decodeYAMLTree(data, cfg)
	if err != nil {
		return nil, err
	}
	doc, err := model.DecodeDocumentFunc(tree, ignoredFieldLogger(cfg))
	if err != nil {
		return nil, fmt.Errorf("oasjson: %w", err)
	}
	return doc, nil
}

// UnmarshalAny decodes a document that may be JSON or YAML. Input whose
// first non-space byte is '{' is treated as JSON.
func UnmarshalAny(data []byte, opts ...Option) (*model.Document, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return Unmarshal(data, opts...)
	}
	return UnmarshalYAML(data, opts...)
}

// DecodeYAMLTree parses YAML into the same generic tree DecodeTree returns.
func DecodeYAMLTree(data []byte, opts ...Option) (any, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return decodeYAMLTree(data, cfg)
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

func decodeYAMLTree(data []byte, cfg *config) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		pe := &oaserrors.ParseError{Message: "invalid YAML", Cause: err}
		if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
			pe.Line, _ = strconv.Atoi(m[1])
		}
		return nil, pe
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, &oaserrors.ParseError{Message: "empty input"}
	}
	yd := &yamlDecoder{
		maxDepth: cfg.maxDepth,
		budget:   aliasBudget(countYAMLNodes(&root)),
		path:     pathutil.Get(),
	}
	defer pathutil.Put(yd.path)
	return yd.value(root.Content[0])
}

// Alias expansion may produce at most maxAliasRatio times as many values as
// the source has nodes, and never fewer than minAliasBudget.
const (
	maxAliasRatio  = 10
	minAliasBudget = 100_000
)

func aliasBudget(parsed int) int {
	return max(parsed*maxAliasRatio, minAliasBudget)
}

// countYAMLNodes counts n and its descendants without following aliases.
func countYAMLNodes(n *yaml.Node) int {
	total := 1
	for _, c := range n.Content {
		total += countYAMLNodes(c)
	}
	return total
}

type yamlDecoder struct {
	maxDepth int
	depth    int
	budget   int
	produced int
	path     *pathutil.PathBuilder
}

// produce counts one decoded value against the alias expansion budget.
func (d *yamlDecoder) produce() error {
	d.produced++
	if d.produced > d.budget {
		return &oaserrors.ResourceLimitError{
			ResourceType: "alias_expansion",
			Limit:        int64(d.budget),
			Path:         d.path.String(),
			Message:      "YAML aliases expand to too many values",
		}
	}
	return nil
}

func (d *yamlDecoder) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(d.maxDepth),
			Actual:       int64(d.depth),
			Path:         d.path.String(),
		}
	}
	return nil
}

func (d *yamlDecoder) fail(n *yaml.Node, format string, args ...any) error {
	return &oaserrors.ParseError{
		JSONPath: d.path.String(),
		Line:     n.Line,
		Column:   n.Column,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (d *yamlDecoder) value(n *yaml.Node) (any, error) {
	if n.Kind != yaml.DocumentNode && n.Kind != yaml.AliasNode {
		if err := d.produce(); err != nil {
			return nil, err
		}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])
	case yaml.AliasNode:
		if err := d.enter(); err != nil {
			return nil, err
		}
		v, err := d.value(n.Alias)
		d.depth--
		return v, err
	case yaml.MappingNode:
		if err := d.enter(); err != nil {
			return nil, err
		}
		m := orderedmap.NewWithCapacity[any](len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, d.fail(k, "mapping keys must be scalars")
			}
			d.path.Push(k.Value)
			v, err := d.value(n.Content[i+1])
			d.path.Pop()
			if err != nil {
				return nil, err
			}
			m.Set(k.Value, v)
		}
		d.depth--
		return m, nil
	case yaml.SequenceNode:
		if err := d.enter(); err != nil {
			return nil, err
		}
		list := make([]any, 0, len(n.Content))
		for i, item := range n.Content {
			d.path.PushIndex(i)
			v, err := d.value(item)
			d.path.Pop()
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		d.depth--
		return list, nil
	case yaml.ScalarNode:
		return d.scalar(n)
	default:
		return nil, d.fail(n, "unsupported YAML node kind %v", n.Kind)
	}
}

func (d *yamlDecoder) scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			return nil, d.fail(n, "invalid boolean %q", n.Value)
		}
		return b, nil
	case "!!int":
		if v, err := decimal.NewFromString(n.Value); err == nil {
			return v, nil
		}
		i, err := strconv.ParseInt(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
		if err != nil {
			return nil, d.fail(n, "invalid integer %q", n.Value)
		}
		return decimal.NewFromInt(i), nil
	case "!!float":
		v, err := decimal.NewFromString(n.Value)
		if err != nil {
			return nil, d.fail(n, "number %q is not representable in JSON", n.Value)
		}
		return v, nil
	default:
		return n.Value, nil
	}
}

// treeToYAML converts a decoded tree into a yaml.Node, keeping key order.
func treeToYAML(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return scalarNode("!!null", "null"), nil
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(x)), nil
	case string:
		return scalarNode("!!str", x), nil
	case decimal.Decimal:
		if x.IsInteger() {
			return scalarNode("!!int", x.String()), nil
		}
		return scalarNode("!!float", x.String()), nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, len(x))}
		for _, item := range x {
			child, err := treeToYAML(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case *orderedmap.Map[any]:
		if x.Len() > math.MaxInt/2 {
			return nil, fmt.Errorf("oasjson: map size %d exceeds safe conversion limit", x.Len())
		}
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: make([]*yaml.Node, 0, x.Len()*2)}
		for k, item := range x.All() {
			child, err := treeToYAML(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("oasjson: unexpected tree value %T", v)
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
