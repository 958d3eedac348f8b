package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.Strict, "expected Strict to be false by default")
		assert.False(t, flags.NoWarnings, "expected NoWarnings to be false by default")
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--strict", "--no-warnings", "-q", "--format", "json", "test.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.Strict, "expected Strict to be true")
		assert.True(t, flags.NoWarnings, "expected NoWarnings to be true")
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, "test.yaml", fs.Arg(0))
	})
}

func TestHandleValidate_NoArgs(t *testing.T) {
	captureOutput(t)
	assert.Error(t, HandleValidate([]string{}))
}

func TestHandleValidate_Help(t *testing.T) {
	captureOutput(t)
	assert.NoError(t, HandleValidate([]string{"--help"}))
}

func TestHandleValidate_InvalidFormat(t *testing.T) {
	captureOutput(t)
	assert.Error(t, HandleValidate([]string{"--format", "invalid", "test.yaml"}))
}

func TestHandleValidate_Valid(t *testing.T) {
	stdout, stderr := captureOutput(t)
	require.NoError(t, HandleValidate([]string{writeTemp(t, "pets.json", petsJSON)}))

	assert.Contains(t, stderr.String(), "OAS Version: 3.0.3")
	assert.Equal(t, "Document is valid: 0 error(s), 0 warning(s)\n", stdout.String())
}

func TestHandleValidate_Invalid(t *testing.T) {
	stdout, _ := captureOutput(t)
	err := HandleValidate([]string{writeTemp(t, "broken.yaml", brokenYAML)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidationFailed))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "✗ paths./items/{id}.get"), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], `: path parameter "id" is not declared`), lines[0])
	assert.Equal(t, "✗ components.schemas.Name: minLength 5 exceeds maxLength 2", lines[1])
	assert.Empty(t, lines[2])
	assert.Equal(t, "Document is invalid: 2 error(s), 0 warning(s)", lines[3])
}

func TestHandleValidate_Quiet(t *testing.T) {
	stdout, stderr := captureOutput(t)
	err := HandleValidate([]string{"-q", writeTemp(t, "broken.yaml", brokenYAML)})
	require.ErrorIs(t, err, ErrValidationFailed)

	assert.Empty(t, stderr.String())
	assert.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), 2)
}

func TestHandleValidate_StrictWarnings(t *testing.T) {
	captureOutput(t)
	withWarning := strings.Replace(petsJSON, `"/pets": {`, `"/pets/": {`, 1)
	path := writeTemp(t, "pets.json", withWarning)

	assert.NoError(t, HandleValidate([]string{path}))
	assert.ErrorIs(t, HandleValidate([]string{"--strict", path}), ErrValidationFailed)
	assert.NoError(t, HandleValidate([]string{"--strict", "--no-warnings", path}))
}

func TestHandleValidate_JSON(t *testing.T) {
	stdout, _ := captureOutput(t)
	err := HandleValidate([]string{"--format", "json", writeTemp(t, "broken.yaml", brokenYAML)})
	require.ErrorIs(t, err, ErrValidationFailed)

	var report struct {
		Valid      bool   `json:"valid"`
		Version    string `json:"version"`
		ErrorCount int    `json:"errorCount"`
		Errors     []struct {
			Path     string `json:"path"`
			Message  string `json:"message"`
			Severity string `json:"severity"`
			Field    string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.False(t, report.Valid)
	assert.Equal(t, "3.0.3", report.Version)
	assert.Equal(t, 2, report.ErrorCount)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, "components.schemas.Name", report.Errors[1].Path)
	assert.Equal(t, "error", report.Errors[1].Severity)
	assert.Equal(t, "minLength", report.Errors[1].Field)
}

func TestHandleValidate_YAML(t *testing.T) {
	stdout, _ := captureOutput(t)
	require.NoError(t, HandleValidate([]string{"--format", "yaml", writeTemp(t, "pets.json", petsJSON)}))

	assert.Contains(t, stdout.String(), "valid: true")
	assert.Contains(t, stdout.String(), "3.0.3")
}
