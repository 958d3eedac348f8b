package pathutil

import "regexp"

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// TemplateParams returns the parameter names of a path template in order of
// appearance, e.g. "/pets/{petId}/toys/{toyId}" -> ["petId", "toyId"].
func TemplateParams(template string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
