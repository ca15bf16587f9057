package transpile

import (
	"strings"

	"github.com/sl2tl/sl2tl/internal/ast"
	"github.com/sl2tl/sl2tl/internal/config"
	"github.com/sl2tl/sl2tl/internal/types"
)

// Transpile walks file's top-level statements in source order and returns
// the equivalent TL source text. checker is a borrowed reference the engine
// queries but never mutates or outlives. Translation does not stop at the
// first error: every top-level statement is attempted so a caller sees every
// unsupported construct in the source, and a non-nil error (always a
// *errors.Report) is returned only once the whole file has been walked.
func Transpile(file *ast.SourceFile, checker types.Checker, options config.EngineOptions) (string, error) {
	ctx := NewContext(checker, options)

	var sb strings.Builder
	for _, stmt := range file.Statements {
		line, err := TranslateStatement(ctx, stmt)
		if err != nil {
			// The error is already recorded on ctx.report; keep walking
			// remaining top-level statements.
			continue
		}
		if line == "" {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if ctx.Report().HasErrors() {
		return "", ctx.Report()
	}
	return sb.String(), nil
}
