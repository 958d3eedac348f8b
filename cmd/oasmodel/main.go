package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasmodel"
	"github.com/erraggy/oasmodel/cmd/oasmodel/commands"
	"github.com/erraggy/oasmodel/internal/mcpserver"
)

// knownCommands lists every sub-command, for typo suggestions.
var knownCommands = []string{"version", "help", "fmt", "validate", "resolve", "example", "mcp"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	os.Exit(run(os.Args[1], os.Args[2:]))
}

func run(command string, args []string) int {
	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Println(oasmodel.BuildInfo())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "fmt":
		err = commands.HandleFmt(args)
	case "validate":
		err = commands.HandleValidate(args)
	case "resolve":
		err = commands.HandleResolve(args)
	case "example":
		err = commands.HandleExample(args)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = mcpserver.Run(ctx)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}

	if err != nil {
		// The validate command already printed its findings.
		if !errors.Is(err, commands.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, c := range knownCommands {
		if d := levenshtein(input, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Printf(`oasmodel - OpenAPI 3.0 document model, formatter and validator

Usage:
  oasmodel <command> [flags] [arguments]

Commands:
  fmt        Re-encode a document in canonical JSON or YAML
  validate   Check a document for inconsistent constraints and references
  resolve    Print the component a local $ref points to
  example    Print a document built in code
  mcp        Run the MCP server on stdio
  version    Show version information
  help       Show this help message

Run 'oasmodel <command> --help' for more information on a command.
`)
}
