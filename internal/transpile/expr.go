package transpile

import (
	"fmt"
	"strings"

	"github.com/sl2tl/sl2tl/internal/ast"
	"github.com/sl2tl/sl2tl/internal/errors"
)

// TranslateExpression renders expr as TL source text from expr and ctx's
// checker/options. A failure is also recorded on ctx's report. A function
// expression's body is translated as statements, so it goes through the
// same indentation and switch-label handling as any other statement body.
func TranslateExpression(ctx *Context, expr ast.Expression) (string, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Name, nil
	case *ast.ThisExpression:
		return "self", nil
	case *ast.StringLiteral:
		return TranslateStringLiteral(e.Value), nil
	case *ast.NumericLiteral:
		return TranslateNumericLiteral(e.Text), nil
	case *ast.BooleanLiteral:
		return TranslateBooleanLiteral(e.Value), nil
	case *ast.BinaryExpression:
		return translateBinary(ctx, e)
	case *ast.UnaryExpression:
		return translateUnary(ctx, e)
	case *ast.ConditionalExpression:
		return translateConditional(ctx, e)
	case *ast.CallExpression:
		return translateCall(ctx, e)
	case *ast.PropertyAccessExpression:
		return translatePropertyAccess(ctx, e)
	case *ast.ElementAccessExpression:
		return translateElementAccess(ctx, e)
	case *ast.NewExpression:
		return translateNew(ctx, e)
	case *ast.ArrayLiteralExpression:
		return translateArrayLiteral(ctx, e)
	case *ast.ObjectLiteralExpression:
		return translateObjectLiteral(ctx, e)
	case *ast.FunctionExpression:
		return translateFunctionExpression(ctx, e)
	case *ast.TypeAssertionExpression:
		// A type assertion carries no runtime weight in TL: translate the
		// wrapped expression and drop the assertion entirely.
		return TranslateExpression(ctx, e.Expression)
	default:
		return "", ctx.fail(expr, "unsupported expression kind: "+ast.KindName(expr))
	}
}

func (c *Context) fail(node ast.Node, message string) error {
	err := errors.NewTranslationError(node, message)
	c.report.Add(err)
	return err
}

func translateBinary(ctx *Context, e *ast.BinaryExpression) (string, error) {
	if IsCompoundAssignment(e.Operator) {
		return "", ctx.fail(e, "compound assignment is only valid as a statement: "+e.Operator)
	}

	left, err := TranslateExpression(ctx, e.Left)
	if err != nil {
		return "", err
	}
	right, err := TranslateExpression(ctx, e.Right)
	if err != nil {
		return "", err
	}

	if IsBitwiseBinary(e.Operator) {
		return bitwiseCall(ctx.options.BitwiseLibrary, e.Operator, left, right), nil
	}

	if e.Operator == "+" && operandIsString(ctx, e.Left) {
		return "(" + left + " .. " + right + ")", nil
	}

	op, ok := RewriteBinaryOperator(e.Operator)
	if !ok {
		return "", ctx.fail(e, "unsupported binary operator: "+e.Operator)
	}
	return "(" + left + " " + op + " " + right + ")", nil
}

func operandIsString(ctx *Context, expr ast.Expression) bool {
	if ctx.checker == nil {
		return false
	}
	return ctx.checker.TypeAt(expr).IsString()
}

func translateUnary(ctx *Context, e *ast.UnaryExpression) (string, error) {
	if e.Operator == "++" || e.Operator == "--" {
		return "", ctx.fail(e, "increment/decrement is only valid as a statement")
	}

	operand, err := TranslateExpression(ctx, e.Operand)
	if err != nil {
		return "", err
	}

	op, ok := RewriteUnaryOperator(e.Operator)
	if !ok {
		return "", ctx.fail(e, "unsupported unary operator: "+e.Operator)
	}
	return op + operand, nil
}

func translateConditional(ctx *Context, e *ast.ConditionalExpression) (string, error) {
	cond, err := TranslateExpression(ctx, e.Condition)
	if err != nil {
		return "", err
	}
	whenTrue, err := TranslateExpression(ctx, e.WhenTrue)
	if err != nil {
		return "", err
	}
	whenFalse, err := TranslateExpression(ctx, e.WhenFalse)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"%s(%s, function() return %s end, function() return %s end)",
		ctx.options.ITEHelper, cond, whenTrue, whenFalse,
	), nil
}

func translateCall(ctx *Context, e *ast.CallExpression) (string, error) {
	args, err := translateArguments(ctx, e.Arguments)
	if err != nil {
		return "", err
	}

	if prop, ok := e.Callee.(*ast.PropertyAccessExpression); ok {
		object, err := TranslateExpression(ctx, prop.Object)
		if err != nil {
			return "", err
		}

		if ctx.checker != nil {
			receiver := ctx.checker.TypeAt(prop.Object)
			switch {
			case receiver.IsString():
				return translateStringCall(ctx, e, object, prop.Name, args)
			case ctx.checker.IsArrayType(receiver):
				return translateArrayCall(ctx, e, object, prop.Name, args)
			}
		}

		return object + ":" + prop.Name + "(" + args + ")", nil
	}

	callee, err := TranslateExpression(ctx, e.Callee)
	if err != nil {
		return "", err
	}
	return callee + "(" + args + ")", nil
}

// translateStringCall rewrites a method call on a string-typed receiver.
// `replace` is the only supported string method; the TL mapping to `sub`
// (substring, not replace) is a known semantic mismatch carried from the
// source design rather than corrected here.
func translateStringCall(ctx *Context, e *ast.CallExpression, object, name, args string) (string, error) {
	if name != "replace" {
		return "", ctx.fail(e, "unsupported string method: "+name)
	}
	return object + ":sub(" + args + ")", nil
}

// translateArrayCall rewrites a method call on an array-typed receiver.
func translateArrayCall(ctx *Context, e *ast.CallExpression, object, name, args string) (string, error) {
	if name != "push" {
		return "", ctx.fail(e, "unsupported array method: "+name)
	}
	if args == "" {
		return "table.insert(" + object + ")", nil
	}
	return "table.insert(" + object + ", " + args + ")", nil
}

func translateArguments(ctx *Context, exprs []ast.Expression) (string, error) {
	parts := make([]string, len(exprs))
	for i, a := range exprs {
		s, err := TranslateExpression(ctx, a)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, ", "), nil
}

// translatePropertyAccess dispatches on the receiver's static type before
// falling back to dot access: a string or array receiver only exposes
// `.length`, and an identifier resolving to an enum symbol is flattened to
// its bare member name rather than kept as `Enum.Member`.
func translatePropertyAccess(ctx *Context, e *ast.PropertyAccessExpression) (string, error) {
	if ctx.checker != nil {
		receiver := ctx.checker.TypeAt(e.Object)
		if receiver.IsString() || ctx.checker.IsArrayType(receiver) {
			if e.Name != "length" {
				return "", ctx.fail(e, "unsupported primitive property: "+e.Name)
			}
			object, err := TranslateExpression(ctx, e.Object)
			if err != nil {
				return "", err
			}
			return "#" + object, nil
		}

		if _, ok := e.Object.(*ast.Identifier); ok {
			if sym := receiver.Symbol; sym != nil && sym.IsEnum() {
				return e.Name, nil
			}
		}
	}

	switch e.Object.(type) {
	case *ast.ThisExpression, *ast.Identifier, *ast.StringLiteral, *ast.NumericLiteral,
		*ast.BooleanLiteral, *ast.ArrayLiteralExpression, *ast.CallExpression,
		*ast.PropertyAccessExpression:
		object, err := TranslateExpression(ctx, e.Object)
		if err != nil {
			return "", err
		}
		return object + "." + e.Name, nil
	default:
		return "", ctx.fail(e, "property access on unsupported receiver kind: "+ast.KindName(e.Object))
	}
}

func translateElementAccess(ctx *Context, e *ast.ElementAccessExpression) (string, error) {
	object, err := TranslateExpression(ctx, e.Object)
	if err != nil {
		return "", err
	}
	index, err := TranslateExpression(ctx, e.Index)
	if err != nil {
		return "", err
	}

	if ctx.checker != nil && ctx.checker.IsArrayType(ctx.checker.TypeAt(e.Object)) {
		index = "(" + index + ") + 1"
	}

	return object + "[" + index + "]", nil
}

func translateNew(ctx *Context, e *ast.NewExpression) (string, error) {
	callee, err := TranslateExpression(ctx, e.Callee)
	if err != nil {
		return "", err
	}
	args, err := translateArguments(ctx, e.Arguments)
	if err != nil {
		return "", err
	}
	return callee + "(" + args + ")", nil
}

func translateArrayLiteral(ctx *Context, e *ast.ArrayLiteralExpression) (string, error) {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		s, err := TranslateExpression(ctx, el)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

func translateObjectLiteral(ctx *Context, e *ast.ObjectLiteralExpression) (string, error) {
	parts := make([]string, len(e.Properties))
	for i, p := range e.Properties {
		value, err := TranslateExpression(ctx, p.Value)
		if err != nil {
			return "", err
		}
		if p.IsIdentifierKey {
			parts[i] = p.Name + " = " + value
			continue
		}
		key, err := TranslateExpression(ctx, p.Key)
		if err != nil {
			return "", err
		}
		parts[i] = "[" + key + "] = " + value
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}

func translateFunctionExpression(ctx *Context, e *ast.FunctionExpression) (string, error) {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = p.Name.Name
	}

	var sb strings.Builder
	sb.WriteString("function(" + strings.Join(params, ", ") + ")\n")
	body, err := translateBlockBody(ctx, e.Body)
	if err != nil {
		return "", err
	}
	sb.WriteString(body)
	sb.WriteString(ctx.Indent() + "end")
	return sb.String(), nil
}
