package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
)

func TestSetupFmtFlags(t *testing.T) {
	fs, flags := SetupFmtFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.YAML)
		assert.False(t, flags.Compact)
		assert.Equal(t, 2, flags.Indent)
		assert.Equal(t, 128, flags.MaxDepth)
		assert.Empty(t, flags.Output)
		assert.False(t, flags.Verbose)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--yaml", "--compact", "--indent", "4", "--max-depth", "10", "-o", "out.yaml", "--verbose", "in.json"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.YAML)
		assert.True(t, flags.Compact)
		assert.Equal(t, 4, flags.Indent)
		assert.Equal(t, 10, flags.MaxDepth)
		assert.Equal(t, "out.yaml", flags.Output)
		assert.True(t, flags.Verbose)
		assert.Equal(t, "in.json", fs.Arg(0))
	})
}

func TestHandleFmt_CanonicalJSON(t *testing.T) {
	stdout, _ := captureOutput(t)
	require.NoError(t, HandleFmt([]string{writeTemp(t, "pets.json", petsJSON)}))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"openapi\": \"3.0.3\",\n  \"info\": {\n    \"title\": \"Pets\",\n    \"version\": \"1.0.0\"\n  },"), out)
	assert.True(t, strings.HasSuffix(out, "}\n"))

	v, err := fastjson.Parse(out)
	require.NoError(t, err)
	var names []string
	v.GetObject("components", "schemas").Visit(func(key []byte, _ *fastjson.Value) {
		names = append(names, string(key))
	})
	assert.Equal(t, []string{"Pets", "PetList", "Pet"}, names)
	assert.Equal(t, "#/components/schemas/PetList", string(v.GetStringBytes("components", "schemas", "Pets", "$ref")))
}

func TestHandleFmt_Compact(t *testing.T) {
	stdout, _ := captureOutput(t)
	require.NoError(t, HandleFmt([]string{"--compact", writeTemp(t, "pets.json", petsJSON)}))

	out := strings.TrimSuffix(stdout.String(), "\n")
	assert.NotContains(t, out, "\n")
	assert.True(t, strings.HasPrefix(out, `{"openapi":"3.0.3","info":{"title":"Pets","version":"1.0.0"},"paths":`), out)
}

func TestHandleFmt_YAML(t *testing.T) {
	stdout, _ := captureOutput(t)
	require.NoError(t, HandleFmt([]string{"--yaml", writeTemp(t, "pets.json", petsJSON)}))

	out := stdout.String()
	assert.Contains(t, out, "title: Pets")
	assert.Less(t, strings.Index(out, "openapi:"), strings.Index(out, "info:"))
}

func TestHandleFmt_OutputFile(t *testing.T) {
	stdout, _ := captureOutput(t)
	in := writeTemp(t, "broken.yaml", brokenYAML)
	out := filepath.Join(t.TempDir(), "broken.json")

	require.NoError(t, HandleFmt([]string{"-o", out, in}))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	v, err := fastjson.ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, 5, v.GetInt("components", "schemas", "Name", "minLength"))
}

func TestHandleFmt_Errors(t *testing.T) {
	captureOutput(t)
	in := writeTemp(t, "pets.json", petsJSON)

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"two files", []string{in, in}},
		{"bad indent", []string{"--indent", "12", in}},
		{"overwrite input", []string{"-o", in, in}},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.json")}},
		{"depth exceeded", []string{"--max-depth", "2", in}},
		{"unknown flag", []string{"--bogus", in}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, HandleFmt(tt.args))
		})
	}
}

func TestHandleFmt_Help(t *testing.T) {
	captureOutput(t)
	assert.NoError(t, HandleFmt([]string{"--help"}))
}
