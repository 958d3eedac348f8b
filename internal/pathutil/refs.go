package pathutil

import "strings"

// ComponentsPrefix is the fragment prefix shared by every component reference.
const ComponentsPrefix = "#/components/"

// Component section names, as they appear in "#/components/<section>/<name>".
const (
	SectionSchemas       = "schemas"
	SectionResponses     = "responses"
	SectionParameters    = "parameters"
	SectionExamples      = "examples"
	SectionRequestBodies = "requestBodies"
	SectionHeaders       = "headers"
	SectionLinks         = "links"
)

// Reference prefixes per section.
const (
	RefPrefixSchemas       = ComponentsPrefix + SectionSchemas + "/"
	RefPrefixResponses     = ComponentsPrefix + SectionResponses + "/"
	RefPrefixParameters    = ComponentsPrefix + SectionParameters + "/"
	RefPrefixExamples      = ComponentsPrefix + SectionExamples + "/"
	RefPrefixRequestBodies = ComponentsPrefix + SectionRequestBodies + "/"
	RefPrefixHeaders       = ComponentsPrefix + SectionHeaders + "/"
	RefPrefixLinks         = ComponentsPrefix + SectionLinks + "/"
)

// ComponentRef builds "#/components/{section}/{name}".
func ComponentRef(section, name string) string {
	return ComponentsPrefix + section + "/" + name
}

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// ParameterRef builds "#/components/parameters/{name}".
func ParameterRef(name string) string {
	return RefPrefixParameters + name
}

// ResponseRef builds "#/components/responses/{name}".
func ResponseRef(name string) string {
	return RefPrefixResponses + name
}

// ExampleRef builds "#/components/examples/{name}".
func ExampleRef(name string) string {
	return RefPrefixExamples + name
}

// RequestBodyRef builds "#/components/requestBodies/{name}".
func RequestBodyRef(name string) string {
	return RefPrefixRequestBodies + name
}

// HeaderRef builds "#/components/headers/{name}".
func HeaderRef(name string) string {
	return RefPrefixHeaders + name
}

// LinkRef builds "#/components/links/{name}".
func LinkRef(name string) string {
	return RefPrefixLinks + name
}

// ParseComponentRef splits a local component reference into its section and
// name. It reports false for anything that is not of the form
// "#/components/<section>/<name>" with a non-empty section and name.
// Names containing "/" are returned as-is; JSON pointer escapes are decoded.
func ParseComponentRef(ref string) (section, name string, ok bool) {
	rest, found := strings.CutPrefix(ref, ComponentsPrefix)
	if !found {
		return "", "", false
	}
	section, name, found = strings.Cut(rest, "/")
	if !found || section == "" || name == "" {
		return "", "", false
	}
	return section, unescapePointer(name), true
}

// unescapePointer decodes the JSON pointer escapes "~1" ("/") and "~0" ("~").
func unescapePointer(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}
