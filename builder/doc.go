// Package builder provides fluent construction of OpenAPI documents.
//
// It has two layers. Typed schema builders (String, Integer, Number,
// Boolean, Array, Object, Any) share their common setters, and every chained
// call returns the concrete builder, so variant-specific setters stay
// available after a shared one:
//
//	zip := builder.String().
//		Description("zip code").
//		Pattern(`^\d{5}(?:[-\s]\d{4})?$`).
//		MinLength(5).
//		Build()
//
// The document Builder collects info, tags, servers, components and paths:
//
//	b := builder.New().
//		SetTitle("Pets").
//		SetVersion("1.0.0").
//		AddSchema("Pet", builder.Object().
//			Property("name", builder.String().Build()).
//			Required("name").
//			Build())
//
//	b.AddOperation("get", "/pets", builder.NewOperation(
//		builder.WithOperationID("listPets"),
//		builder.WithJSONResponse("200", "all pets", builder.Array(b.SchemaRef("Pet")).Build()),
//	))
//
//	doc, err := b.Build()
//
// # Overwrites
//
// Adding an entry under a key that already exists replaces it in place:
// the new value keeps the old key's position. Replacements are logged at
// debug level through WithLogger.
//
// # Errors
//
// Empty component names, unsupported HTTP methods and duplicate
// operationIds are recorded as *BuilderError values and returned together
// from Build as BuilderErrors. Every builder error matches
// oaserrors.ErrConfig.
//
// The builder does not check schema constraints (a minLength above
// maxLength is accepted). Use the validator package for that.
package builder
