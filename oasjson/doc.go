// Package oasjson renders model documents as canonical JSON or YAML and
// decodes them back.
//
// # Encoding
//
// Marshal asks each node for its set fields (see model.FieldWriter) and
// writes them in the order the node reports them. Keyed collections keep
// insertion order. Unset fields are left out entirely; empty but set
// collections render as [] and {}. A node carrying a $ref renders only the
// $ref. Arbitrary-precision numbers (decimal.Decimal) are written in plain
// notation, never with an exponent.
//
//	data, err := oasjson.MarshalIndent(doc, "", "  ")
//
// Encoding fails only on caller misuse: a nil node inside a list or map, a
// value JSON cannot represent (NaN, a channel), or nesting deeper than
// WithMaxDepth allows (*oaserrors.ResourceLimitError). On failure no output
// is produced.
//
// # Decoding
//
// Unmarshal, UnmarshalYAML and UnmarshalAny rebuild a *model.Document.
// Unknown keys are ignored and logged at debug level through WithLogger.
// Syntax errors and wrongly typed values fail with *oaserrors.ParseError.
//
// All configuration is passed per call; the package has no global state.
package oasjson
