package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/orderedmap"
	"github.com/erraggy/oasmodel/walker"
)

// onSchema checks that a schema's own constraints can be satisfied together.
// Reference schemas are checked by onRef.
func (r *run) onSchema(wc *walker.WalkContext, s model.Schema) walker.Action {
	core := s.Core()
	if core.IsRef() {
		return walker.Continue
	}
	path := wc.JSONPath

	if core.Enum != nil && len(core.Enum) == 0 {
		r.addWarning(path, "enum is empty, no value can satisfy it", withField("enum"))
	}
	for _, name := range core.Required {
		if core.Properties == nil || !core.Properties.Has(name) {
			r.addWarning(path, fmt.Sprintf("required property %q is not declared in properties", name),
				withField("required"), withValue(name))
		}
	}

	switch v := s.(type) {
	case *model.StringSchema:
		r.checkString(path, v)
	case *model.IntegerSchema:
		r.checkNumeric(path, &v.NumericConstraints, core, true)
	case *model.NumberSchema:
		r.checkNumeric(path, &v.NumericConstraints, core, false)
	case *model.ArraySchema:
		r.checkCountRange(path, "minItems", "maxItems", v.MinItems, v.MaxItems)
	case *model.ObjectSchema:
		r.checkCountRange(path, "minProperties", "maxProperties", v.MinProperties, v.MaxProperties)
	}
	return walker.Continue
}

// checkCountRange checks a non-negative min/max pair.
func (r *run) checkCountRange(path, minField, maxField string, lo, hi *int) {
	if lo != nil && *lo < 0 {
		r.addError(path, fmt.Sprintf("%s must not be negative", minField), withField(minField), withValue(*lo))
	}
	if hi != nil && *hi < 0 {
		r.addError(path, fmt.Sprintf("%s must not be negative", maxField), withField(maxField), withValue(*hi))
	}
	if lo != nil && hi != nil && *lo > *hi {
		r.addError(path, fmt.Sprintf("%s %d exceeds %s %d", minField, *lo, maxField, *hi), withField(minField), withValue(*lo))
	}
}

func (r *run) checkString(path string, s *model.StringSchema) {
	r.checkCountRange(path, "minLength", "maxLength", s.MinLength, s.MaxLength)

	var re *regexp.Regexp
	if s.Pattern != "" {
		var err error
		re, err = regexp.Compile(s.Pattern)
		if err != nil {
			r.addError(path, fmt.Sprintf("invalid pattern: %v", err), withField("pattern"), withValue(s.Pattern))
		}
	}

	for i, val := range s.Enum {
		enumPath := path + ".enum[" + strconv.Itoa(i) + "]"
		str, ok := val.(string)
		if !ok {
			if val != nil || !isNullable(&s.SchemaCore) {
				r.addError(enumPath, fmt.Sprintf("enum value must be a string (found %s)", kindOf(val)), withValue(val))
			}
			continue
		}
		n := utf8.RuneCountInString(str)
		if s.MinLength != nil && n < *s.MinLength {
			r.addError(enumPath, fmt.Sprintf("enum value %q is shorter than minLength %d", str, *s.MinLength), withValue(str))
		}
		if s.MaxLength != nil && n > *s.MaxLength {
			r.addError(enumPath, fmt.Sprintf("enum value %q is longer than maxLength %d", str, *s.MaxLength), withValue(str))
		}
		if re != nil && !re.MatchString(str) {
			r.addError(enumPath, fmt.Sprintf("enum value %q does not match pattern", str), withValue(str))
		}
	}
}

func (r *run) checkNumeric(path string, n *model.NumericConstraints, core *model.SchemaCore, integral bool) {
	if n.MultipleOf != nil && !n.MultipleOf.IsPositive() {
		r.addError(path, "multipleOf must be greater than zero", withField("multipleOf"), withValue(n.MultipleOf.String()))
	}
	if n.Minimum != nil && n.Maximum != nil {
		switch cmp := n.Minimum.Cmp(*n.Maximum); {
		case cmp > 0:
			r.addError(path, fmt.Sprintf("minimum %s exceeds maximum %s", n.Minimum, n.Maximum),
				withField("minimum"), withValue(n.Minimum.String()))
		case cmp == 0 && (isTrue(n.ExclusiveMinimum) || isTrue(n.ExclusiveMaximum)):
			r.addError(path, fmt.Sprintf("exclusive bound leaves no value between %s and %s", n.Minimum, n.Maximum),
				withField("minimum"), withValue(n.Minimum.String()))
		}
	}
	if n.Minimum == nil && isTrue(n.ExclusiveMinimum) {
		r.addWarning(path, "exclusiveMinimum has no effect without minimum", withField("exclusiveMinimum"))
	}
	if n.Maximum == nil && isTrue(n.ExclusiveMaximum) {
		r.addWarning(path, "exclusiveMaximum has no effect without maximum", withField("exclusiveMaximum"))
	}

	for i, val := range core.Enum {
		enumPath := path + ".enum[" + strconv.Itoa(i) + "]"
		if val == nil && isNullable(core) {
			continue
		}
		d, ok := toDecimal(val)
		if !ok {
			r.addError(enumPath, fmt.Sprintf("enum value must be a number (found %s)", kindOf(val)), withValue(val))
			continue
		}
		if integral && !d.IsInteger() {
			r.addError(enumPath, fmt.Sprintf("enum value %s is not an integer", d), withValue(d.String()))
		}
		if !inRange(d, n) {
			r.addError(enumPath, fmt.Sprintf("enum value %s is outside the declared bounds", d), withValue(d.String()))
		}
	}
}

func inRange(d decimal.Decimal, n *model.NumericConstraints) bool {
	if n.Minimum != nil {
		if c := d.Cmp(*n.Minimum); c < 0 || (c == 0 && isTrue(n.ExclusiveMinimum)) {
			return false
		}
	}
	if n.Maximum != nil {
		if c := d.Cmp(*n.Maximum); c > 0 || (c == 0 && isTrue(n.ExclusiveMaximum)) {
			return false
		}
	}
	return true
}

// toDecimal converts the numeric forms an enum value can take, decoded or
// set in code, to a decimal.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case *decimal.Decimal:
		if n == nil {
			return decimal.Decimal{}, false
		}
		return *n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.RequireFromString(strconv.FormatUint(uint64(n), 10)), true
	case uint64:
		return decimal.RequireFromString(strconv.FormatUint(n, 10)), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case float64:
		return decimal.NewFromFloat(n), true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any, orderedmap.Keyed:
		return "object"
	}
	if _, ok := toDecimal(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func isNullable(c *model.SchemaCore) bool {
	return isTrue(c.Nullable)
}
