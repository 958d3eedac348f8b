package commands

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/erraggy/oasmodel"
	"github.com/erraggy/oasmodel/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	CommonFlags
	Strict     bool
	NoWarnings bool
	Quiet      bool
	Format     string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	flags.register(fs)
	fs.BoolVar(&flags.Strict, "strict", false, "treat warnings as failures")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasmodel validate [flags] <file|->\n\n")
		Writef(fs.Output(), "Check an OpenAPI 3.0 document for inconsistent schema constraints, malformed\n")
		Writef(fs.Output(), "path templates, undeclared path parameters and unresolved references.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasmodel validate openapi.yaml\n")
		Writef(fs.Output(), "  oasmodel validate --strict openapi.json\n")
		Writef(fs.Output(), "  cat openapi.yaml | oasmodel validate -q -\n")
		Writef(fs.Output(), "  oasmodel validate --format json openapi.yaml | jq '.valid'\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Validation successful\n")
		Writef(fs.Output(), "  1    Validation failed\n")
	}

	return fs, flags
}

// validateReport is the structured output of the validate command.
type validateReport struct {
	Valid        bool              `json:"valid"         yaml:"valid"`
	Version      string            `json:"version"       yaml:"version"`
	ErrorCount   int               `json:"errorCount"    yaml:"errorCount"`
	WarningCount int               `json:"warningCount"  yaml:"warningCount"`
	Errors       []validator.Issue `json:"errors,omitempty"   yaml:"errors,omitempty"`
	Warnings     []validator.Issue `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ErrValidationFailed is returned when the document has errors, or
// warnings in strict mode.
var ErrValidationFailed = errors.New("validation failed")

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or '-' for stdin")
	}

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	startTime := time.Now()
	doc, err := LoadDocument(specPath, flags.codecOptions()...)
	if err != nil {
		return err
	}

	result := validator.Validate(doc,
		validator.WithStrictMode(flags.Strict),
		validator.WithIncludeWarnings(!flags.NoWarnings),
		validator.WithMaxDepth(flags.MaxDepth),
		validator.WithLogger(flags.Logger()),
	)
	elapsed := time.Since(startTime)

	if flags.Format != FormatText {
		report := validateReport{
			Valid:        result.Valid,
			Version:      doc.OpenAPI,
			ErrorCount:   result.ErrorCount,
			WarningCount: result.WarningCount,
			Errors:       result.Errors,
			Warnings:     result.Warnings,
		}
		if err := OutputStructured(report, flags.Format); err != nil {
			return err
		}
		if !result.Valid {
			return ErrValidationFailed
		}
		return nil
	}

	if !flags.Quiet {
		Writef(Stderr, "oasmodel version: %s\n", oasmodel.Version())
		Writef(Stderr, "Specification: %s\n", FormatSpecPath(specPath))
		Writef(Stderr, "OAS Version: %s\n", doc.OpenAPI)
		Writef(Stderr, "Total Time: %v\n\n", elapsed)
	}

	for _, issue := range result.Issues() {
		Writef(Stdout, "%s\n", issue)
	}

	if !result.Valid {
		if !flags.Quiet {
			Writef(Stdout, "\n%s\n", summary(result))
		}
		return ErrValidationFailed
	}
	if !flags.Quiet {
		Writef(Stdout, "%s\n", summary(result))
	}
	return nil
}

func summary(r *validator.Result) string {
	status := "valid"
	if !r.Valid {
		status = "invalid"
	}
	return fmt.Sprintf("Document is %s: %d error(s), %d warning(s)", status, r.ErrorCount, r.WarningCount)
}
