package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sl2tl",
	Short: "Translate a type-checked SL AST to TL source",
	Long: `sl2tl renders an already-parsed, already-type-checked SL abstract
syntax tree as equivalent TL source text.

It does not parse or type-check SL itself: the input is a JSON-encoded AST
produced by a host parser, read from a file or stdin. This keeps the tool
focused on the translation rules — statement and expression lowering,
operator rewriting, 1-based array indexing, switch/case desugaring — rather
than on reimplementing SL's grammar.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a .sl2tl.yaml options file")
	rootCmd.PersistentFlags().BoolVar(&jsonErrors, "json-errors", false, "emit translation errors as JSON instead of caret-annotated text")
}

var (
	configPath string
	jsonErrors bool
)

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+msg+"\n", args...)
}
