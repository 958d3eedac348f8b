// Package commands provides CLI command handlers for oasmodel.
package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oasjson"
	"github.com/erraggy/oasmodel/oaslog"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Stdout and Stderr are where commands write. Tests replace them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
	Stdin  io.Reader = os.Stdin
)

// CommonFlags are registered on every sub-command that reads a document.
type CommonFlags struct {
	MaxDepth int
	Verbose  bool
}

func (c *CommonFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&c.MaxDepth, "max-depth", oasjson.DefaultMaxDepth, "maximum nesting depth when decoding and encoding")
	fs.BoolVar(&c.Verbose, "verbose", false, "log debug output to stderr")
}

// Logger returns a text slog logger on Stderr when --verbose is set.
func (c *CommonFlags) Logger() oaslog.Logger {
	if !c.Verbose {
		return oaslog.NopLogger{}
	}
	return oaslog.NewSlogAdapter(slog.New(slog.NewTextHandler(Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// codecOptions returns the oasjson options shared by every command.
func (c *CommonFlags) codecOptions() []oasjson.Option {
	return []oasjson.Option{
		oasjson.WithMaxDepth(c.MaxDepth),
		oasjson.WithLogger(c.Logger()),
	}
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data in the specified format (json or yaml) to Stdout.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(Stdout, "%s\n", bytes)
	return nil
}

// ReadSpec returns the raw bytes of a document file, or of stdin for "-".
func ReadSpec(specPath string) ([]byte, error) {
	if specPath == StdinFilePath {
		data, err := io.ReadAll(Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// LoadDocument reads and decodes a JSON or YAML document.
func LoadDocument(specPath string, opts ...oasjson.Option) (*model.Document, error) {
	data, err := ReadSpec(specPath)
	if err != nil {
		return nil, err
	}
	doc, err := oasjson.UnmarshalAny(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", FormatSpecPath(specPath), err)
	}
	return doc, nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}
	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}
