// Package config loads the engine's tunable output options from an optional
// YAML file, the way the rest of the pack's tools keep their knobs in a
// small top-level config struct instead of scattering flags through the
// engine itself.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// EngineOptions controls the handful of output choices the translator makes
// that are not dictated by the source itself.
type EngineOptions struct {
	// IndentWidth is the number of spaces used per nesting level of emitted
	// output. Zero means "use DefaultIndentWidth".
	IndentWidth int `yaml:"indentWidth"`

	// BitwiseLibrary names the TL module required for bitwise operator
	// rewrites (e.g. "bit", "bit32"). Empty means "use DefaultBitwiseLibrary".
	BitwiseLibrary string `yaml:"bitwiseLibrary"`

	// ITEHelper names the runtime function synthesized calls for ternary
	// expressions resolve to (e.g. "ITE"). Empty means "use DefaultITEHelper".
	ITEHelper string `yaml:"iteHelper"`
}

const (
	// DefaultIndentWidth is used when EngineOptions.IndentWidth is zero.
	DefaultIndentWidth = 4
	// DefaultBitwiseLibrary is used when EngineOptions.BitwiseLibrary is empty.
	DefaultBitwiseLibrary = "bit"
	// DefaultITEHelper is used when EngineOptions.ITEHelper is empty.
	DefaultITEHelper = "ITE"
)

// Resolved returns a copy of o with every zero-valued field replaced by its
// default, so the rest of the engine never has to special-case "unset".
func (o EngineOptions) Resolved() EngineOptions {
	if o.IndentWidth <= 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	if o.BitwiseLibrary == "" {
		o.BitwiseLibrary = DefaultBitwiseLibrary
	}
	if o.ITEHelper == "" {
		o.ITEHelper = DefaultITEHelper
	}
	return o
}

// Load reads EngineOptions from a YAML file at path. A missing file is not
// an error — it yields the zero value, which Resolved turns into defaults.
func Load(path string) (EngineOptions, error) {
	var opts EngineOptions

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
