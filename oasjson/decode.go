package oasjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/orderedmap"
)

// Unmarshal decodes a JSON document.
//
// Decoding is lenient: keys the model does not know are ignored (and logged
// at debug level). Malformed JSON fails with a *oaserrors.ParseError that
// carries the line and column; a known key holding a value of the wrong
// type fails with a *oaserrors.ParseError that names its JSON path.
//
// Opaque values (default, example, enum, extensions) are normalized: numbers
// become decimal.Decimal and objects *orderedmap.Map[any].
func Unmarshal(data []byte, opts ...Option) (*model.Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	tree, err := decodeTree(data, cfg)
	if err != nil {
		return nil, err
	}
	doc, err := model.DecodeDocumentFunc(tree, ignoredFieldLogger(cfg))
	if err != nil {
		return nil, fmt.Errorf("oasjson: %w", err)
	}
	return doc, nil
}

// UnmarshalSchema decodes a single JSON schema object.
func UnmarshalSchema(data []byte, opts ...Option) (model.Schema, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	tree, err := decodeTree(data, cfg)
	if err != nil {
		return nil, err
	}
	s, err := model.DecodeSchemaFunc(tree, "", ignoredFieldLogger(cfg))
	if err != nil {
		return nil, fmt.Errorf("oasjson: %w", err)
	}
	return s, nil
}

// Decode reads a whole JSON document from r.
func Decode(r io.Reader, opts ...Option) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("oasjson: read input: %w", err)
	}
	return Unmarshal(data, opts...)
}

func ignoredFieldLogger(cfg *config) model.UnknownFieldFunc {
	return func(path, field string) {
		cfg.logger.Debug("ignoring unknown field", "path", path, "field", field)
	}
}

// DecodeTree parses JSON into the generic tree the model decodes from:
// objects become *orderedmap.Map[any] (key order kept), arrays []any,
// numbers decimal.Decimal, plus string, bool and nil.
func DecodeTree(data []byte, opts ...Option) (any, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return decodeTree(data, cfg)
}

func decodeTree(data []byte, cfg *config) (any, error) {
	if !json.Valid(data) {
		return nil, syntaxError(data, json.Unmarshal(data, new(any)))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	td := &treeDecoder{dec: dec, maxDepth: cfg.maxDepth, path: pathutil.Get()}
	defer pathutil.Put(td.path)

	tok, err := dec.Token()
	if err != nil {
		return nil, syntaxError(data, err)
	}
	v, err := td.value(tok)
	if err != nil {
		var limit *oaserrors.ResourceLimitError
		if errors.As(err, &limit) {
			return nil, err
		}
		return nil, syntaxError(data, err)
	}
	return v, nil
}

type treeDecoder struct {
	dec      *json.Decoder
	maxDepth int
	depth    int
	path     *pathutil.PathBuilder
}

func (d *treeDecoder) enter() error {
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

func (d *treeDecoder) value(tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return d.object()
		case '[':
			return d.array()
		default:
			return nil, fmt.Errorf("unexpected %q", rune(t))
		}
	case string, bool, nil:
		return t, nil
	case json.Number:
		n, err := decimal.NewFromString(t.String())
		if err != nil {
			return nil, &oaserrors.ParseError{
				JSONPath: d.path.String(),
				Message:  fmt.Sprintf("invalid number %q", t.String()),
				Cause:    err,
			}
		}
		return n, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func (d *treeDecoder) object() (any, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	m := orderedmap.New[any]()
	for d.dec.More() {
		keyTok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}
		valTok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		d.path.Push(key)
		v, err := d.value(valTok)
		d.path.Pop()
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	d.depth--
	return m, nil
}

func (d *treeDecoder) array() (any, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	list := []any{}
	for i := 0; d.dec.More(); i++ {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		d.path.PushIndex(i)
		v, err := d.value(tok)
		d.path.Pop()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	if _, err := d.dec.Token(); err != nil {
		return nil, err
	}
	d.depth--
	return list, nil
}

// syntaxError converts a JSON library error into a positioned ParseError.
func syntaxError(data []byte, err error) error {
	var pe *oaserrors.ParseError
	if errors.As(err, &pe) {
		return pe
	}
	out := &oaserrors.ParseError{Message: "invalid JSON", Cause: err}
	if len(bytes.TrimSpace(data)) == 0 {
		out.Message = "empty input"
		out.Cause = nil
		return out
	}
	var se *json.SyntaxError
	if errors.As(err, &se) {
		out.Line, out.Column = position(data, se.Offset)
	}
	return out
}

// position turns a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	head := data[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	column = int(offset) - bytes.LastIndexByte(head, '\n')
	return line, column
}
