package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sl2tl/sl2tl/internal/config"
)

func TestResolvedFillsZeroFields(t *testing.T) {
	got := config.EngineOptions{}.Resolved()

	if got.IndentWidth != config.DefaultIndentWidth {
		t.Errorf("IndentWidth = %d, want %d", got.IndentWidth, config.DefaultIndentWidth)
	}
	if got.BitwiseLibrary != config.DefaultBitwiseLibrary {
		t.Errorf("BitwiseLibrary = %q, want %q", got.BitwiseLibrary, config.DefaultBitwiseLibrary)
	}
	if got.ITEHelper != config.DefaultITEHelper {
		t.Errorf("ITEHelper = %q, want %q", got.ITEHelper, config.DefaultITEHelper)
	}
}

func TestResolvedPreservesSetFields(t *testing.T) {
	opts := config.EngineOptions{IndentWidth: 4, BitwiseLibrary: "bit32", ITEHelper: "iif"}
	got := opts.Resolved()

	if got != opts {
		t.Errorf("Resolved() = %+v, want unchanged %+v", got, opts)
	}
}

func TestLoadMissingFileYieldsZeroValue(t *testing.T) {
	opts, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for a missing file", err)
	}
	if opts != (config.EngineOptions{}) {
		t.Errorf("Load() = %+v, want zero value", opts)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sl2tl.yaml")
	contents := "indentWidth: 4\nbitwiseLibrary: bit32\niteHelper: iif\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	opts, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := config.EngineOptions{IndentWidth: 4, BitwiseLibrary: "bit32", ITEHelper: "iif"}
	if opts != want {
		t.Errorf("Load() = %+v, want %+v", opts, want)
	}
}
