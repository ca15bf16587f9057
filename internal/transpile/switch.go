package transpile

import (
	"fmt"
	"strings"

	"github.com/sl2tl/sl2tl/internal/ast"
)

// TranslateSwitch lowers SL's C-style fallthrough switch to a chain of
// if/elseif/else guarded equality tests, one per clause. Each branch body
// opens with its own case label and, for every clause but the last, ends
// with a forced goto into the next clause's label (falling off the end of a
// case body without a `break` lands on the next label exactly the way SL's
// fallthrough does). `break` inside a clause becomes a goto to the trailing
// exit label instead.
func TranslateSwitch(ctx *Context, stmt *ast.SwitchStatement) (string, error) {
	discriminant, err := TranslateExpression(ctx, stmt.Discriminant)
	if err != nil {
		return "", err
	}
	scrutinee := "(" + discriminant + ")"

	k := len(stmt.Cases)
	base := ctx.SwitchBase()
	ctx.AdvanceSwitchCounter(k)
	exitLabel := fmt.Sprintf("switchDone%d", base)

	caseLabel := func(i int) string {
		return fmt.Sprintf("switchCase%d", base+i)
	}

	var sb strings.Builder
	for i, c := range stmt.Cases {
		if c.IsDefault {
			sb.WriteString(ctx.Indent() + "else\n")
		} else {
			value, valueErr := TranslateExpression(ctx, c.Value)
			if valueErr != nil {
				return "", valueErr
			}
			keyword := "elseif "
			if i == 0 {
				keyword = "if "
			}
			sb.WriteString(ctx.Indent() + keyword + scrutinee + "==" + "(" + value + ")" + " then\n")
		}

		var bodyErr error
		ctx.Indented(func() {
			sb.WriteString(ctx.Indent() + "::" + caseLabel(i) + "::\n")
			ctx.WithinSwitch(exitLabel, func() {
				for _, inner := range c.Statements {
					line, lineErr := TranslateStatement(ctx, inner)
					if lineErr != nil {
						bodyErr = lineErr
						return
					}
					if line == "" {
						continue
					}
					sb.WriteString(ctx.Indent() + line + "\n")
				}
			})
			if bodyErr != nil {
				return
			}
			if i < k-1 {
				sb.WriteString(ctx.Indent() + "goto " + caseLabel(i+1) + "\n")
			}
		})
		if bodyErr != nil {
			return "", bodyErr
		}
	}
	sb.WriteString(ctx.Indent() + "end\n")
	sb.WriteString(ctx.Indent() + "::" + exitLabel + "::")

	return sb.String(), nil
}
