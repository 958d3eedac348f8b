package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasmodel/oasjson"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	CommonFlags
	YAML bool
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	flags.register(fs)
	fs.BoolVar(&flags.YAML, "yaml", false, "render YAML instead of JSON")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasmodel resolve [flags] <file|-> <ref>\n\n")
		Writef(fs.Output(), "Print the component a local reference points to. References between\n")
		Writef(fs.Output(), "components are followed until a non-reference target is reached.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasmodel resolve openapi.yaml '#/components/schemas/Pet'\n")
		Writef(fs.Output(), "  oasmodel resolve --yaml openapi.json '#/components/responses/NotFound'\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("resolve command requires a file path and a reference")
	}

	opts := flags.codecOptions()
	doc, err := LoadDocument(fs.Arg(0), opts...)
	if err != nil {
		return err
	}

	node, err := doc.Components.Resolve(fs.Arg(1))
	if err != nil {
		return err
	}

	var data []byte
	if flags.YAML {
		data, err = oasjson.MarshalYAML(node, opts...)
	} else {
		data, err = oasjson.MarshalIndent(node, "", "  ", opts...)
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	Writef(Stdout, "%s", data)
	return nil
}
