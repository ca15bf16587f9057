package transpile

import (
	"strings"

	"github.com/sl2tl/sl2tl/internal/ast"
)

// TranslateClass lowers a class declaration to TL's idiomatic open-table
// idiom: an idempotent `C = C or {}` re-open (so splitting a class across
// files, or re-running the same translation unit, never clobbers an
// already-populated table), static fields assigned with dot access, a
// colon-dispatched `constructor` function that seeds instance fields ahead
// of the user's own constructor body, and colon-dispatched methods.
func TranslateClass(ctx *Context, decl *ast.ClassDecl) (string, error) {
	name := decl.Name.Name

	var sb strings.Builder
	sb.WriteString(ctx.Indent() + name + " = " + name + " or {};\n")

	for _, p := range decl.Properties {
		if !p.IsStatic {
			continue
		}
		value := "nil"
		if p.Initializer != nil {
			v, err := TranslateExpression(ctx, p.Initializer)
			if err != nil {
				return "", err
			}
			value = v
		}
		sb.WriteString(ctx.Indent() + name + "." + p.Name.Name + " = " + value + ";\n")
	}

	ctor, err := translateConstructor(ctx, name, decl)
	if err != nil {
		return "", err
	}
	sb.WriteString(ctor)

	for _, m := range decl.Methods {
		method, err := translateMethod(ctx, name, m)
		if err != nil {
			return "", err
		}
		sb.WriteString(method)
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// instanceFields returns the declared-with-initializer, non-static
// properties of decl, in source order.
func instanceFields(decl *ast.ClassDecl) []*ast.PropertyDecl {
	var fields []*ast.PropertyDecl
	for _, p := range decl.Properties {
		if p.IsStatic || p.Initializer == nil {
			continue
		}
		fields = append(fields, p)
	}
	return fields
}

// translateConstructor emits `function C:constructor(params) ... end`. An
// explicit constructor is required whenever one was declared or instance
// fields need seeding; a class with neither has nothing to construct and
// emits no constructor at all.
func translateConstructor(ctx *Context, className string, decl *ast.ClassDecl) (string, error) {
	fields := instanceFields(decl)
	if decl.Constructor == nil && len(fields) == 0 {
		return "", nil
	}

	var params []*ast.ParameterDecl
	if decl.Constructor != nil {
		params = decl.Constructor.Parameters
	}
	paramNames := make([]string, len(params))
	for i, p := range params {
		paramNames[i] = p.Name.Name
	}

	var sb strings.Builder
	sb.WriteString(ctx.Indent() + "function " + className + ":constructor(" + strings.Join(paramNames, ", ") + ")\n")
	var err error
	ctx.Indented(func() {
		for _, p := range fields {
			v, ferr := TranslateExpression(ctx, p.Initializer)
			if ferr != nil {
				err = ferr
				return
			}
			sb.WriteString(ctx.Indent() + "self." + p.Name.Name + " = " + v + ";\n")
		}
		if decl.Constructor != nil {
			for _, s := range decl.Constructor.Body.Statements {
				line, lerr := TranslateStatement(ctx, s)
				if lerr != nil {
					err = lerr
					return
				}
				if line == "" {
					continue
				}
				sb.WriteString(ctx.Indent() + line + "\n")
			}
		}
	})
	if err != nil {
		return "", err
	}
	sb.WriteString(ctx.Indent() + "end\n")
	return sb.String(), nil
}

// translateMethod emits a class method. Constructor and methods alike use
// colon dispatch (self is the implicit first argument); only static fields
// use dot access.
func translateMethod(ctx *Context, className string, m *ast.FunctionDecl) (string, error) {
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = p.Name.Name
	}

	var sb strings.Builder
	sb.WriteString(ctx.Indent() + "function " + className + ":" + m.Name.Name + "(" + strings.Join(params, ", ") + ")\n")
	body, err := translateBlockBody(ctx, m.Body)
	if err != nil {
		return "", err
	}
	sb.WriteString(body)
	sb.WriteString(ctx.Indent() + "end\n")
	return sb.String(), nil
}
