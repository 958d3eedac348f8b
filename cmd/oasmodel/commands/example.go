package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasmodel/builder"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oasjson"
)

// ExampleFlags contains flags for the example command
type ExampleFlags struct {
	YAML    bool
	Verbose bool
}

// SetupExampleFlags creates and configures a FlagSet for the example command.
func SetupExampleFlags() (*flag.FlagSet, *ExampleFlags) {
	fs := flag.NewFlagSet("example", flag.ContinueOnError)
	flags := &ExampleFlags{}

	fs.BoolVar(&flags.YAML, "yaml", false, "render YAML instead of JSON")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log debug output to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasmodel example [flags]\n\n")
		Writef(fs.Output(), "Build a sample document in code and print it.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// HandleExample executes the example command
func HandleExample(args []string) error {
	fs, flags := SetupExampleFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("example command takes no arguments")
	}

	logger := (&CommonFlags{Verbose: flags.Verbose}).Logger()
	doc, err := ExampleDocument(builder.WithLogger(logger))
	if err != nil {
		return err
	}

	var data []byte
	if flags.YAML {
		data, err = oasjson.MarshalYAML(doc, oasjson.WithLogger(logger))
	} else {
		data, err = oasjson.MarshalIndent(doc, "", "  ", oasjson.WithLogger(logger))
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	Writef(Stdout, "%s", data)
	return nil
}

// ExampleDocument builds the sample document: a contact, a tag, two
// standalone schemas, an Address schema with five ordered properties and a
// GET /foo whose response references Address.
func ExampleDocument(opts ...builder.Option) (*model.Document, error) {
	b := builder.New(opts...).
		SetContact("Tony the Tam", "https://foo.bar", "tony@eatbacon.org").
		SetExternalDocs("http://swagger.io", "read more here").
		AddTag("funky dunky", "all about neat things")

	b.AddSchema("StringSchema", builder.String().
		Description("simple string schema").
		MinLength(3).
		MaxLength(100).
		Build())
	b.AddSchema("IntegerSchema", builder.Integer().
		Description("simple integer schema").
		MultipleOfInt(3).
		MinimumInt(6).
		Build())

	b.AddSchema("Address", builder.Any().
		Description("address object").
		Property("street", builder.String().Description("the street number").Build()).
		Property("city", builder.String().Description("city").Build()).
		Property("state", builder.String().Description("state").MinLength(2).MaxLength(2).Build()).
		Property("zip", builder.String().
			Description("zip code").
			Pattern(`^\d{5}(?:[-\s]\d{4})?$`).
			MinLength(2).
			MaxLength(2).
			Build()).
		Property("country", builder.String().
			Description("2-digit country code").
			Enum("US").
			MinLength(2).
			MaxLength(2).
			Build()).
		Build())

	ok := (&model.Response{Description: "it worked"}).
		AddMediaType("application/json", &model.MediaType{Schema: b.SchemaRef("Address")}).
		AddLink("funky", &model.Link{OperationID: "getFunky"})

	b.AddPath("/foo", &model.PathItem{Description: "the foo path"})
	b.AddOperation(model.MethodGet, "/foo", builder.NewOperation(
		builder.WithQueryParameter("skip", "Records to skip", builder.Integer().Build()),
		builder.WithResponse("200", ok),
	))

	return b.Build()
}
