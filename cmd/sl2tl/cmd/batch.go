package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

var (
	batchOutDir string
	batchExt    string
)

var batchCmd = &cobra.Command{
	Use:   "batch [dir]",
	Short: "Translate every *.sl.json file in a directory to TL",
	Long: `batch walks dir non-recursively, translates every file matching
the --ext suffix (default ".sl.json") in natural filename order, and writes
each result to --out-dir with that suffix replaced by .tl.

Files are processed independently: a translation failure in one file is
reported and does not stop the rest of the batch. batch exits non-zero if
any file failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "directory to write .tl files into (default: same as input)")
	batchCmd.Flags().StringVar(&batchExt, "ext", ".sl.json", "input file suffix to match")
}

func runBatch(_ *cobra.Command, args []string) error {
	dir := args[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), batchExt) {
			continue
		}
		names = append(names, e.Name())
	}
	natural.Sort(names)

	outDir := batchOutDir
	if outDir == "" {
		outDir = dir
	}

	options, err := loadOptions()
	if err != nil {
		return err
	}

	failures := 0
	for _, name := range names {
		inPath := filepath.Join(dir, name)
		data, rerr := os.ReadFile(inPath)
		if rerr != nil {
			exitWithError("%s: %v", inPath, rerr)
			failures++
			continue
		}

		out, terr := translateJSON(data, options)
		if terr != nil {
			reportTranslationError(terr, inPath)
			failures++
			continue
		}

		outName := strings.TrimSuffix(name, batchExt) + ".tl"
		outPath := filepath.Join(outDir, outName)
		if werr := os.WriteFile(outPath, []byte(out), 0o644); werr != nil {
			exitWithError("%s: %v", outPath, werr)
			failures++
			continue
		}
		fmt.Fprintf(os.Stderr, "%s -> %s\n", inPath, outPath)
	}

	if failures > 0 {
		return fmt.Errorf("batch failed on %d of %d file(s)", failures, len(names))
	}
	return nil
}
