package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sl2tl/sl2tl/internal/astjson"
	"github.com/sl2tl/sl2tl/internal/config"
	"github.com/sl2tl/sl2tl/internal/errors"
	"github.com/sl2tl/sl2tl/internal/transpile"
	"github.com/spf13/cobra"
)

var outputFile string

var transpileCmd = &cobra.Command{
	Use:   "transpile [file]",
	Short: "Translate a JSON-encoded SL AST to TL source",
	Long: `transpile reads a JSON-encoded SL abstract syntax tree from a file
(or stdin, when no file is given, or "-") and writes the equivalent TL
source text.

Examples:
  # Translate a single file
  sl2tl transpile script.sl.json

  # Translate from stdin, writing to a file
  sl2tl transpile - -o script.tl < script.sl.json

  # Emit errors as JSON for tooling integration
  sl2tl transpile --json-errors script.sl.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranspile,
}

func init() {
	rootCmd.AddCommand(transpileCmd)
	transpileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
}

func runTranspile(_ *cobra.Command, args []string) error {
	data, filename, err := readInput(args)
	if err != nil {
		return err
	}

	options, err := loadOptions()
	if err != nil {
		return err
	}

	out, terr := translateJSON(data, options)
	if terr != nil {
		return reportTranslationError(terr, filename)
	}

	return writeOutput(out)
}

func readInput(args []string) (data []byte, filename string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
		return data, "<stdin>", err
	}
	filename = args[0]
	data, err = os.ReadFile(filename)
	return data, filename, err
}

func loadOptions() (config.EngineOptions, error) {
	opts, err := config.Load(configPath)
	if err != nil {
		return config.EngineOptions{}, fmt.Errorf("load config: %w", err)
	}
	return opts.Resolved(), nil
}

func translateJSON(data []byte, options config.EngineOptions) (string, error) {
	file, checker, err := astjson.Decode(data)
	if err != nil {
		return "", err
	}
	return transpile.Transpile(file, checker, options)
}

func reportTranslationError(err error, filename string) error {
	report, isReport := err.(*errors.Report)
	if !isReport {
		exitWithError("%s: %v", filename, err)
		return err
	}
	if jsonErrors {
		doc, jerr := report.ToJSON()
		if jerr != nil {
			return jerr
		}
		fmt.Fprintln(os.Stderr, doc)
	} else {
		fmt.Fprint(os.Stderr, report.Format(true))
	}
	return fmt.Errorf("translation failed with %d error(s)", len(report.Errors))
}

func writeOutput(out string) error {
	if outputFile == "" || outputFile == "-" {
		_, err := io.WriteString(os.Stdout, out)
		return err
	}
	return os.WriteFile(outputFile, []byte(strings.TrimSuffix(out, "\n")+"\n"), 0o644)
}
