// Package model is the in-memory object model of an OpenAPI 3.x document.
//
// # Nodes
//
// Every object in the graph implements Node. A node reports its set fields,
// in declaration order, to a FieldWriter; the serialization engine in
// package oasjson renders whatever the writer collected. Unset fields are
// never reported, so nothing ever renders as null. Nil pointers, empty
// strings, nil slices and nil maps mean "unset"; an empty non-nil slice or
// map means "present but empty" and renders as [] or {}.
//
// # Schemas
//
// Schema is an interface implemented by *AnySchema, *StringSchema,
// *IntegerSchema, *NumberSchema, *BooleanSchema, *ArraySchema and
// *ObjectSchema. All of them embed SchemaCore. New variants register a
// factory with RegisterSchemaType and need no change anywhere else.
//
// Setting constraints never validates them: a StringSchema with
// MinLength 10 and MaxLength 2 is accepted as is. Package validator reports
// such problems on request.
//
// # References
//
// Schemas, parameters, responses, request bodies, headers, examples, links
// and path items may carry a Ref. A node with a Ref renders as
// {"$ref": "..."} and nothing else. References are never followed during
// encoding; Components.ResolveSchema and friends follow them on request.
//
// # Ordering
//
// Every keyed collection (properties, paths, responses, content, each
// components section) is an *orderedmap.Map. Keys render in insertion order
// and re-setting a key keeps its position.
//
// A Document is meant to be built by one goroutine and then treated as a
// value. None of the types in this package are safe for concurrent mutation.
package model
