package oasjson

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/orderedmap"
)

// Marshal renders a node (usually a *model.Document, but any model.Node
// works) as compact JSON.
//
// Only fields that were set are written, in declaration order; a node
// carrying a $ref is written as {"$ref": "..."}. References are never
// followed, so documents with cyclic references encode fine. Cycles in the
// Go object graph itself hit the depth limit instead of recursing forever.
//
// On error nothing is returned.
func Marshal(node model.Node, opts ...Option) ([]byte, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return encode(node, cfg)
}

// MarshalIndent is Marshal with WithIndent(prefix, indent) applied.
func MarshalIndent(node model.Node, prefix, indent string, opts ...Option) ([]byte, error) {
	return Marshal(node, append(opts, WithIndent(prefix, indent))...)
}

// Encode writes the JSON rendering of node to w, followed by a newline.
// The output is fully rendered before anything is written, so a failed
// encode leaves w untouched.
func Encode(w io.Writer, node model.Node, opts ...Option) error {
	data, err := Marshal(node, opts...)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("oasjson: write output: %w", err)
	}
	return nil
}

func encode(node model.Node, cfg *config) ([]byte, error) {
	if model.IsNil(node) {
		return nil, &oaserrors.ConfigError{Option: "node", Message: "cannot encode a nil node"}
	}
	e := &encoder{cfg: cfg, path: pathutil.Get()}
	defer pathutil.Put(e.path)

	if err := e.encodeNode(node); err != nil {
		return nil, err
	}
	cfg.logger.Debug("encoded node", "type", fmt.Sprintf("%T", node), "bytes", e.buf.Len())
	return e.buf.Bytes(), nil
}

type encoder struct {
	buf   bytes.Buffer
	cfg   *config
	path  *pathutil.PathBuilder
	depth int
}

func (e *encoder) pretty() bool {
	return e.cfg.indent != "" || e.cfg.prefix != ""
}

func (e *encoder) newline() {
	if !e.pretty() {
		return
	}
	e.buf.WriteByte('\n')
	e.buf.WriteString(e.cfg.prefix)
	for i := 0; i < e.depth; i++ {
		e.buf.WriteString(e.cfg.indent)
	}
}

func (e *encoder) enter() error {
	e.depth++
	if e.depth > e.cfg.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(e.cfg.maxDepth),
			Actual:       int64(e.depth),
			Path:         e.path.String(),
		}
	}
	return nil
}

func (e *encoder) leave(count int) {
	e.depth--
	if count > 0 {
		e.newline()
	}
}

// object writes a JSON object with the given keys. value writes the value
// of member i.
func (e *encoder) object(keys []string, value func(i int) error) error {
	if err := e.enter(); err != nil {
		return err
	}
	e.buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline()
		if err := e.writeString(k); err != nil {
			return err
		}
		e.buf.WriteByte(':')
		if e.pretty() {
			e.buf.WriteByte(' ')
		}
		e.path.Push(k)
		err := value(i)
		e.path.Pop()
		if err != nil {
			return err
		}
	}
	e.leave(len(keys))
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) array(n int, value func(i int) error) error {
	if err := e.enter(); err != nil {
		return err
	}
	e.buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline()
		e.path.PushIndex(i)
		err := value(i)
		e.path.Pop()
		if err != nil {
			return err
		}
	}
	e.leave(n)
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) encodeNode(n model.Node) error {
	var w model.FieldWriter
	n.WriteFields(&w)
	fields := w.Fields()
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Name
	}
	return e.object(keys, func(i int) error {
		return e.encodeValue(fields[i].Value)
	})
}

func (e *encoder) encodeMap(m orderedmap.Keyed) error {
	keys := make([]string, 0, m.Len())
	values := make([]any, 0, m.Len())
	m.RangeAny(func(k string, v any) bool {
		keys = append(keys, k)
		values = append(values, v)
		return true
	})
	return e.object(keys, func(i int) error {
		return e.encodeValue(values[i])
	})
}

func (e *encoder) nilElement() error {
	return &oaserrors.ConfigError{
		Option:  e.path.String(),
		Message: "nil node in document graph",
	}
}

func (e *encoder) encodeValue(v any) error {
	switch x := v.(type) {
	case nil:
		e.buf.WriteString("null")
		return nil
	case model.Node:
		if model.IsNil(x) {
			return e.nilElement()
		}
		return e.encodeNode(x)
	case orderedmap.Keyed:
		if x.IsNil() {
			return e.nilElement()
		}
		return e.encodeMap(x)
	case []model.Node:
		return e.array(len(x), func(i int) error {
			if model.IsNil(x[i]) {
				return e.nilElement()
			}
			return e.encodeNode(x[i])
		})
	case []any:
		return e.array(len(x), func(i int) error {
			return e.encodeValue(x[i])
		})
	case []string:
		return e.array(len(x), func(i int) error {
			return e.writeString(x[i])
		})
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return e.object(keys, func(i int) error {
			return e.encodeValue(x[keys[i]])
		})
	case string:
		return e.writeString(x)
	case bool:
		e.buf.WriteString(strconv.FormatBool(x))
		return nil
	case int:
		e.buf.WriteString(strconv.Itoa(x))
		return nil
	case int64:
		e.buf.WriteString(strconv.FormatInt(x, 10))
		return nil
	case int32:
		e.buf.WriteString(strconv.FormatInt(int64(x), 10))
		return nil
	case uint64:
		e.buf.WriteString(strconv.FormatUint(x, 10))
		return nil
	case float64:
		return e.writeFloat(x)
	case float32:
		return e.writeFloat(float64(x))
	case decimal.Decimal:
		e.buf.WriteString(x.String())
		return nil
	case *decimal.Decimal:
		if x == nil {
			e.buf.WriteString("null")
			return nil
		}
		e.buf.WriteString(x.String())
		return nil
	case json.Number:
		e.buf.WriteString(x.String())
		return nil
	default:
		return e.encodeOpaque(v)
	}
}

func (e *encoder) writeFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return &oaserrors.ConfigError{
			Option:  e.path.String(),
			Value:   f,
			Message: "value is not representable in JSON",
		}
	}
	e.buf.WriteString(decimal.NewFromFloat(f).String())
	return nil
}

func (e *encoder) writeString(s string) error {
	var (
		b   []byte
		err error
	)
	if e.cfg.escapeHTML {
		b, err = json.Marshal(s)
	} else {
		b, err = json.MarshalNoEscape(s)
	}
	if err != nil {
		return fmt.Errorf("oasjson: encode string at %s: %w", e.path.String(), err)
	}
	e.buf.Write(b)
	return nil
}

// encodeOpaque renders an example or default value of a type the encoder
// has no case for, such as a caller's struct.
func (e *encoder) encodeOpaque(v any) error {
	var (
		b   []byte
		err error
	)
	if e.cfg.escapeHTML {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalNoEscape(v)
	}
	if err != nil {
		return &oaserrors.ConfigError{
			Option:  e.path.String(),
			Value:   fmt.Sprintf("%T", v),
			Message: "unsupported value",
			Cause:   err,
		}
	}
	e.buf.Write(b)
	return nil
}
