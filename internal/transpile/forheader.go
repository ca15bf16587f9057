package transpile

import (
	"github.com/sl2tl/sl2tl/internal/ast"
)

// ForHeaderInfo is the { start, end, step } triple a TL numeric `for` loop
// needs, recovered from a classical C-style for-header.
type ForHeaderInfo struct {
	Variable string
	Start    string
	End      string
	Step     string
}

// AnalyzeForHeader inspects a classical for-statement's init/cond/incr and
// reports whether it fits TL's numeric for (a single loop variable compared
// against a bound and stepped by a constant amount each iteration). When it
// does not fit, ok is false and the caller (translateFor) rejects the loop
// with a translation error.
func AnalyzeForHeader(ctx *Context, f *ast.ForStatement) (*ForHeaderInfo, bool, error) {
	varName, start, ok := forInit(ctx, f.Init)
	if !ok {
		return nil, false, nil
	}

	end, ascending, inclusive, ok, err := forBound(ctx, varName, f.Cond)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	step, stepAscending, ok, err := forStep(ctx, varName, f.Incr)
	if err != nil {
		return nil, false, err
	}
	if !ok || stepAscending != ascending {
		return nil, false, nil
	}

	endExpr := end
	if !inclusive {
		if ascending {
			endExpr = "(" + end + ") - 1"
		} else {
			endExpr = "(" + end + ") + 1"
		}
	}

	return &ForHeaderInfo{Variable: varName, Start: start, End: endExpr, Step: step}, true, nil
}

func forInit(ctx *Context, init ast.Statement) (name, start string, ok bool) {
	stmt, isVar := init.(*ast.VariableStatement)
	if !isVar || len(stmt.Declarations) != 1 {
		return "", "", false
	}
	decl := stmt.Declarations[0]
	if decl.Initializer == nil {
		return "", "", false
	}
	startExpr, err := TranslateExpression(ctx, decl.Initializer)
	if err != nil {
		return "", "", false
	}
	return decl.Name.Name, startExpr, true
}

func forBound(ctx *Context, varName string, cond ast.Expression) (end string, ascending, inclusive, ok bool, err error) {
	bin, isBinary := cond.(*ast.BinaryExpression)
	if !isBinary {
		return "", false, false, false, nil
	}
	ident, isIdent := bin.Left.(*ast.Identifier)
	if !isIdent || ident.Name != varName {
		return "", false, false, false, nil
	}

	endExpr, err := TranslateExpression(ctx, bin.Right)
	if err != nil {
		return "", false, false, false, err
	}
	switch bin.Operator {
	case "<":
		return endExpr, true, false, true, nil
	case "<=":
		return endExpr, true, true, true, nil
	case ">":
		return endExpr, false, false, true, nil
	case ">=":
		return endExpr, false, true, true, nil
	default:
		return "", false, false, false, nil
	}
}

func forStep(ctx *Context, varName string, incr ast.Expression) (step string, ascending, ok bool, err error) {
	switch e := incr.(type) {
	case *ast.UnaryExpression:
		ident, isIdent := e.Operand.(*ast.Identifier)
		if !isIdent || ident.Name != varName {
			return "", false, false, nil
		}
		switch e.Operator {
		case "++":
			return "1", true, true, nil
		case "--":
			return "-1", false, true, nil
		default:
			return "", false, false, nil
		}
	case *ast.BinaryExpression:
		ident, isIdent := e.Left.(*ast.Identifier)
		if !isIdent || ident.Name != varName {
			return "", false, false, nil
		}
		rhs, rerr := TranslateExpression(ctx, e.Right)
		if rerr != nil {
			return "", false, false, rerr
		}
		switch e.Operator {
		case "+=":
			return rhs, true, true, nil
		case "-=":
			return "-(" + rhs + ")", false, true, nil
		default:
			return "", false, false, nil
		}
	default:
		return "", false, false, nil
	}
}
