package transpile

import (
	"strconv"
	"strings"

	"github.com/sl2tl/sl2tl/internal/ast"
)

// TranslateStatement renders stmt as one or more lines of TL source text,
// indented at ctx's current depth. Block-shaped statements recurse through
// translateBlockBody rather than reusing this function's own indentation,
// since their bodies are one level deeper.
func TranslateStatement(ctx *Context, stmt ast.Statement) (string, error) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		return translateBlockStatement(ctx, s)
	case *ast.ExpressionStatement:
		return translateExpressionStatement(ctx, s)
	case *ast.ReturnStatement:
		return translateReturn(ctx, s)
	case *ast.BreakStatement:
		return translateBreak(ctx, s)
	case *ast.ContinueStatement:
		return "", ctx.fail(s, "continue is not supported")
	case *ast.IfStatement:
		return translateIf(ctx, s)
	case *ast.WhileStatement:
		return translateWhile(ctx, s)
	case *ast.ForStatement:
		return translateFor(ctx, s)
	case *ast.ForOfStatement:
		return translateForOf(ctx, s)
	case *ast.ForInStatement:
		return translateForIn(ctx, s)
	case *ast.SwitchStatement:
		return TranslateSwitch(ctx, s)
	case *ast.VariableStatement:
		if len(s.Declarations) > 0 && s.Declarations[0].IsDeclare {
			return "", nil
		}
		return translateVariableStatement(ctx, s)
	case *ast.ImportDecl:
		return translateImport(ctx, s)
	case *ast.ClassDecl:
		return TranslateClass(ctx, s)
	case *ast.EnumDecl:
		return translateEnum(ctx, s)
	case *ast.FunctionDecl:
		if s.IsDeclare {
			return "", nil
		}
		return translateFunctionDecl(ctx, s)
	case *ast.InterfaceDecl, *ast.TypeAliasDecl:
		return "", nil
	default:
		return "", ctx.fail(stmt, "unsupported statement kind: "+ast.KindName(stmt))
	}
}

// translateBlockBody translates a block's statements one indentation level
// deeper than ctx's current depth, without the surrounding braces — callers
// that emit their own `do`/`then`/`function` delimiter use this directly.
func translateBlockBody(ctx *Context, block *ast.BlockStatement) (string, error) {
	var sb strings.Builder
	var err error
	ctx.Indented(func() {
		for _, s := range block.Statements {
			var line string
			line, err = TranslateStatement(ctx, s)
			if err != nil {
				return
			}
			if line == "" {
				continue
			}
			sb.WriteString(ctx.Indent())
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func translateBlockStatement(ctx *Context, block *ast.BlockStatement) (string, error) {
	body, err := translateBlockBody(ctx, block)
	if err != nil {
		return "", err
	}
	return "do\n" + body + ctx.Indent() + "end", nil
}

// translateExpressionStatement special-cases the expression shapes that
// only make sense as a statement: compound assignment and increment /
// decrement, neither of which TL has an operator-expression form for.
func translateExpressionStatement(ctx *Context, stmt *ast.ExpressionStatement) (string, error) {
	switch e := stmt.Expression.(type) {
	case *ast.BinaryExpression:
		if IsCompoundAssignment(e.Operator) {
			return translateCompoundAssignment(ctx, e)
		}
	case *ast.UnaryExpression:
		if e.Operator == "++" || e.Operator == "--" {
			return translateIncrDecr(ctx, e)
		}
	}

	expr, err := TranslateExpression(ctx, stmt.Expression)
	if err != nil {
		return "", err
	}
	return expr + ";", nil
}

func translateCompoundAssignment(ctx *Context, e *ast.BinaryExpression) (string, error) {
	lhs, err := TranslateExpression(ctx, e.Left)
	if err != nil {
		return "", err
	}
	rhs, err := TranslateExpression(ctx, e.Right)
	if err != nil {
		return "", err
	}

	base := BaseOperator(e.Operator)
	if IsBitwiseBinary(base) {
		return lhs + " = " + bitwiseCall(ctx.options.BitwiseLibrary, base, lhs, rhs) + ";", nil
	}
	if base == "+" && operandIsString(ctx, e.Left) {
		return lhs + " = " + lhs + " .. " + rhs + ";", nil
	}
	return lhs + " = " + lhs + " " + base + " " + rhs + ";", nil
}

func translateIncrDecr(ctx *Context, e *ast.UnaryExpression) (string, error) {
	operand, err := TranslateExpression(ctx, e.Operand)
	if err != nil {
		return "", err
	}
	op := "+"
	if e.Operator == "--" {
		op = "-"
	}
	return operand + " = " + operand + " " + op + " 1;", nil
}

func translateReturn(ctx *Context, stmt *ast.ReturnStatement) (string, error) {
	if stmt.Value == nil {
		return "return", nil
	}
	value, err := TranslateExpression(ctx, stmt.Value)
	if err != nil {
		return "", err
	}
	return "return " + value, nil
}

// translateBreak emits a loop break outside a switch, or a goto to the
// enclosing switch's exit label inside one (TL's `break` only exits loops,
// so a switch lowered to if/elseif/else needs goto to emulate it).
func translateBreak(ctx *Context, stmt *ast.BreakStatement) (string, error) {
	if ctx.InSwitch() {
		if ctx.currentSwitchLabel == "" {
			return "", ctx.fail(stmt, "break used outside any switch or loop")
		}
		return "goto " + ctx.currentSwitchLabel, nil
	}
	return "break", nil
}

func translateIf(ctx *Context, stmt *ast.IfStatement) (string, error) {
	cond, err := TranslateExpression(ctx, stmt.Condition)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("if " + cond + " then\n")
	body, err := translateBranchBody(ctx, stmt.Consequence)
	if err != nil {
		return "", err
	}
	sb.WriteString(body)

	if stmt.Alternative != nil {
		if elseif, isIf := stmt.Alternative.(*ast.IfStatement); isIf {
			elseifText, err := translateIf(ctx, elseif)
			if err != nil {
				return "", err
			}
			sb.WriteString(ctx.Indent() + "else" + elseifText)
			return sb.String(), nil
		}
		sb.WriteString(ctx.Indent() + "else\n")
		altBody, err := translateBranchBody(ctx, stmt.Alternative)
		if err != nil {
			return "", err
		}
		sb.WriteString(altBody)
	}
	sb.WriteString(ctx.Indent() + "end")
	return sb.String(), nil
}

// translateBranchBody translates a statement used as an if/while/for
// body, unwrapping a block so its statements are indented directly under
// the enclosing `then`/`do` rather than inside a redundant nested block.
func translateBranchBody(ctx *Context, stmt ast.Statement) (string, error) {
	if block, ok := stmt.(*ast.BlockStatement); ok {
		return translateBlockBody(ctx, block)
	}

	var body string
	var err error
	ctx.Indented(func() {
		var line string
		line, err = TranslateStatement(ctx, stmt)
		if err != nil {
			return
		}
		body = ctx.Indent() + line + "\n"
	})
	if err != nil {
		return "", err
	}
	return body, nil
}

func translateWhile(ctx *Context, stmt *ast.WhileStatement) (string, error) {
	cond, err := TranslateExpression(ctx, stmt.Condition)
	if err != nil {
		return "", err
	}
	body, err := translateBranchBody(ctx, stmt.Body)
	if err != nil {
		return "", err
	}
	return "while " + cond + " do\n" + body + ctx.Indent() + "end", nil
}

// translateFor lowers a classical for-header to a TL numeric for. A header
// shape AnalyzeForHeader cannot reduce (a non-constant step, a non-simple
// bound comparison, ...) is rejected outright rather than widened to a
// while loop: "for-header shape not reducible to a numeric for" is a listed
// translation-error condition, not a fallback point.
func translateFor(ctx *Context, stmt *ast.ForStatement) (string, error) {
	header, ok, err := AnalyzeForHeader(ctx, stmt)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ctx.fail(stmt, "for-header shape not reducible to a numeric for")
	}

	body, err := translateBranchBody(ctx, stmt.Body)
	if err != nil {
		return "", err
	}
	return "for " + header.Variable + " = " + header.Start + ", " + header.End + ", " + header.Step + " do\n" +
		body + ctx.Indent() + "end", nil
}

func translateForOf(ctx *Context, stmt *ast.ForOfStatement) (string, error) {
	iterable, err := TranslateExpression(ctx, stmt.Iterable)
	if err != nil {
		return "", err
	}
	body, err := translateBranchBody(ctx, stmt.Body)
	if err != nil {
		return "", err
	}
	return "for _, " + stmt.Variable.Name + " in ipairs(" + iterable + ") do\n" + body + ctx.Indent() + "end", nil
}

func translateForIn(ctx *Context, stmt *ast.ForInStatement) (string, error) {
	object, err := TranslateExpression(ctx, stmt.Object)
	if err != nil {
		return "", err
	}
	body, err := translateBranchBody(ctx, stmt.Body)
	if err != nil {
		return "", err
	}
	return "for " + stmt.Variable.Name + " in pairs(" + object + ") do\n" + body + ctx.Indent() + "end", nil
}

func translateVariableStatement(ctx *Context, stmt *ast.VariableStatement) (string, error) {
	names := make([]string, len(stmt.Declarations))
	values := make([]string, 0, len(stmt.Declarations))
	haveValues := false
	for i, d := range stmt.Declarations {
		names[i] = d.Name.Name
		if d.Initializer == nil {
			continue
		}
		haveValues = true
		v, err := TranslateExpression(ctx, d.Initializer)
		if err != nil {
			return "", err
		}
		values = append(values, v)
	}

	decl := "local " + strings.Join(names, ", ")
	if haveValues {
		decl += " = " + strings.Join(values, ", ")
	}
	return decl + ";", nil
}

func translateImport(ctx *Context, decl *ast.ImportDecl) (string, error) {
	switch decl.Shape {
	case ast.ImportNamespace:
		return decl.NamespaceName + " = require(\"" + decl.ModulePath + "\");", nil
	case ast.ImportNamed:
		return "require(\"" + decl.ModulePath + "\");", nil
	default:
		return "", ctx.fail(decl, "unsupported import shape")
	}
}

// translateEnum flattens an enum declaration to one bare assignment per
// member at the current indent (`Name=<n>`), rather than a table: enum
// members are referenced elsewhere as flattened top-level names (see
// translatePropertyAccess's enum-symbol dispatch), so the declaration itself
// must not wrap them in a namespace.
func translateEnum(ctx *Context, decl *ast.EnumDecl) (string, error) {
	next := 0
	lines := make([]string, len(decl.Members))
	for i, m := range decl.Members {
		if m.Initializer != nil {
			numLit, ok := m.Initializer.(*ast.NumericLiteral)
			if !ok {
				return "", ctx.fail(decl, "enum initializer must be a numeric literal: "+m.Name)
			}
			n, err := strconv.Atoi(numLit.Text)
			if err != nil {
				return "", ctx.fail(decl, "enum initializer must be a numeric literal: "+m.Name)
			}
			next = n
		}
		lines[i] = m.Name + "=" + itoa(next)
		next++
	}
	return strings.Join(lines, "\n"+ctx.Indent()), nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func translateFunctionDecl(ctx *Context, decl *ast.FunctionDecl) (string, error) {
	params := make([]string, len(decl.Parameters))
	for i, p := range decl.Parameters {
		params[i] = p.Name.Name
	}

	name := "<anonymous>"
	if decl.Name != nil {
		name = decl.Name.Name
	}

	var sb strings.Builder
	sb.WriteString("local function " + name + "(" + strings.Join(params, ", ") + ")\n")
	body, err := translateBlockBody(ctx, decl.Body)
	if err != nil {
		return "", err
	}
	sb.WriteString(body)
	sb.WriteString(ctx.Indent() + "end")
	return sb.String(), nil
}
