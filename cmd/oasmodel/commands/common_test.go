package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmodel/oaslog"
)

const petsJSON = `{
  "info": {"version": "1.0.0", "title": "Pets"},
  "openapi": "3.0.3",
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "responses": {
          "200": {
            "description": "OK",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Pets"}}}
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Pets": {"$ref": "#/components/schemas/PetList"},
      "PetList": {"type": "array", "items": {"$ref": "#/components/schemas/Pet"}},
      "Pet": {"type": "object", "properties": {"name": {"type": "string", "minLength": 1}}, "required": ["name"]}
    }
  }
}`

const brokenYAML = `openapi: "3.0.3"
info:
  title: Broken
  version: "1"
paths:
  /items/{id}:
    get:
      responses:
        "200":
          description: OK
components:
  schemas:
    Name:
      type: string
      minLength: 5
      maxLength: 2
`

// captureOutput redirects Stdout and Stderr for the duration of the test.
func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = stdout, stderr
	t.Cleanup(func() { Stdout, Stderr = oldOut, oldErr })
	return stdout, stderr
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestOutputStructured(t *testing.T) {
	stdout, _ := captureOutput(t)
	data := struct {
		Name  string `json:"name"  yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}{Name: "pets", Count: 2}

	require.NoError(t, OutputStructured(data, FormatJSON))
	assert.Equal(t, "{\n  \"name\": \"pets\",\n  \"count\": 2\n}\n", stdout.String())

	stdout.Reset()
	require.NoError(t, OutputStructured(data, FormatYAML))
	assert.Equal(t, "name: pets\ncount: 2\n\n", stdout.String())

	assert.Error(t, OutputStructured(data, FormatText))
}

func TestLoadDocument(t *testing.T) {
	doc, err := LoadDocument(writeTemp(t, "pets.json", petsJSON))
	require.NoError(t, err)
	assert.Equal(t, "Pets", doc.Info.Title)

	doc, err = LoadDocument(writeTemp(t, "broken.yaml", brokenYAML))
	require.NoError(t, err)
	assert.Equal(t, "Broken", doc.Info.Title)

	_, err = LoadDocument(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading file")

	_, err = LoadDocument(writeTemp(t, "bad.json", `{"openapi": `))
	assert.ErrorContains(t, err, "decoding")
}

func TestLoadDocument_Stdin(t *testing.T) {
	old := Stdin
	Stdin = strings.NewReader(petsJSON)
	t.Cleanup(func() { Stdin = old })

	doc, err := LoadDocument(StdinFilePath)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")

	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.json"), []string{in}))
	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.json"), []string{StdinFilePath}))
	assert.ErrorContains(t, ValidateOutputPath(in, []string{in}), "would overwrite input file")

	target := writeTemp(t, "target.json", "{}")
	link := filepath.Join(dir, "link.json")
	require.NoError(t, os.Symlink(target, link))
	assert.ErrorContains(t, ValidateOutputPath(link, []string{in}), "refusing to write to symlink")
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

func TestCommonFlagsLogger(t *testing.T) {
	_, stderr := captureOutput(t)

	assert.IsType(t, oaslog.NopLogger{}, (&CommonFlags{}).Logger())

	l := (&CommonFlags{Verbose: true}).Logger()
	l.Debug("decoding", "path", "api.yaml")
	assert.Contains(t, stderr.String(), "level=DEBUG msg=decoding path=api.yaml")
}
