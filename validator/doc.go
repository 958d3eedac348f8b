// Package validator checks a model.Document for problems the encoder does
// not catch: constraint sets no value can satisfy, dangling references,
// duplicate operation IDs, malformed path templates and common authoring
// mistakes.
//
// The validator inspects the document only. It never evaluates data
// instances against schemas.
//
//	result := validator.Validate(doc)
//	for _, issue := range result.Errors {
//	    fmt.Println(issue)
//	}
//	if err := result.Err(); err != nil {
//	    // errors.Is(err, oaserrors.ErrValidation) is true
//	}
//
// Errors mark documents that third-party tooling would reject. Warnings mark
// likely mistakes; [WithStrictMode] makes them fail validation too.
package validator
