// Package pathutil builds the JSON paths used in error messages and walker
// callbacks, and the "#/components/<section>/<name>" reference strings used
// by the component registry.
//
// PathBuilder uses push/pop semantics so recursive traversal does not
// allocate a string per level. Only String() materializes the path:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("components")
//	path.Push("schemas")
//	path.Push(name)
//	// ... recurse ...
//	path.Pop()
//
// Reference helpers:
//
//	ref := pathutil.SchemaRef("Address")            // "#/components/schemas/Address"
//	section, name, ok := pathutil.ParseComponentRef(ref) // "schemas", "Address", true
package pathutil
