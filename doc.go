// Package oasmodel provides a typed, in-memory model of OpenAPI 3.0
// documents and an order-stable serializer for it.
//
// # Overview
//
// The module is organized in layers:
//
//   - orderedmap: insertion-ordered string-keyed maps used for every keyed collection
//   - model: the document tree, the schema hierarchy, $ref handling and components
//   - oasjson: canonical JSON (and YAML) encoding and decoding of model nodes
//   - builder: fluent construction of documents and schemas
//   - walker: typed traversal of a document
//   - validator: consistency checks on constraints and references
//   - oaserrors, oaslog: shared error types and the logging interface
//
// The oasmodel command (cmd/oasmodel) wraps these as a CLI and an MCP server.
//
// # Quick Start
//
// Build and render a document:
//
//	b := builder.New()
//	b.SetTitle("Pets").SetVersion("1.0.0")
//	b.AddSchema("Pet", builder.Object().
//	    Property("name", builder.String().Build()).
//	    Required("name").
//	    Build())
//	doc, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := oasjson.MarshalIndent(doc, "", "  ")
//
// Output never contains null for an unset field, keyed collections keep
// insertion order, and a node carrying $ref renders as {"$ref": ...} alone.
//
// Decode and validate:
//
//	doc, err := oasjson.UnmarshalAny(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := validator.Validate(doc).Err(); err != nil {
//	    log.Fatal(err)
//	}
package oasmodel
