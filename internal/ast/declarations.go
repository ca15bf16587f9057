package ast

import (
	"strings"

	"github.com/sl2tl/sl2tl/internal/token"
)

// modifiers carries the handful of source modifiers the engine needs to
// check: "declare" is dropped entirely, "static" separates class members
// from instance members. Embedded by declaration nodes that can carry them.
type modifiers struct {
	IsDeclare bool
	IsStatic  bool
}

// VariableDecl is one `name [= initializer]` entry of a variable statement.
// Class fields are PropertyDecl and enum members are EnumMember.
type VariableDecl struct {
	base
	modifiers
	Name        *Identifier
	Initializer Expression // nil when absent
}

func NewVariableDecl(tok token.Token, name *Identifier, init Expression) *VariableDecl {
	return &VariableDecl{base: base{Token: tok, kind: KindVariableDecl}, Name: name, Initializer: init}
}

func (*VariableDecl) statementNode()   {}
func (*VariableDecl) declarationNode() {}
func (v *VariableDecl) String() string {
	if v.Initializer == nil {
		return v.Name.Name
	}
	return v.Name.Name + " = " + v.Initializer.String()
}

// ParameterDecl is one function/method/constructor parameter.
type ParameterDecl struct {
	base
	Name *Identifier
}

func NewParameterDecl(tok token.Token, name *Identifier) *ParameterDecl {
	return &ParameterDecl{base: base{Token: tok, kind: KindParameterDecl}, Name: name}
}

func (*ParameterDecl) statementNode()   {}
func (*ParameterDecl) declarationNode() {}
func (p *ParameterDecl) String() string { return p.Name.Name }

// FunctionDecl is a top-level function declaration, a class method, or a
// class constructor body. Method-ness is not a property of the node itself:
// a FunctionDecl is a method only by virtue of being referenced from a
// ClassDecl's Methods or Constructor field.
type FunctionDecl struct {
	base
	modifiers
	Name       *Identifier
	Parameters []*ParameterDecl
	Body       *BlockStatement
}

func NewFunctionDecl(tok token.Token, name *Identifier, params []*ParameterDecl, body *BlockStatement) *FunctionDecl {
	return &FunctionDecl{base: base{Token: tok, kind: KindFunctionDecl}, Name: name, Parameters: params, Body: body}
}

func (*FunctionDecl) statementNode()   {}
func (*FunctionDecl) declarationNode() {}
func (f *FunctionDecl) String() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = p.String()
	}
	name := "<anonymous>"
	if f.Name != nil {
		name = f.Name.Name
	}
	return "function " + name + "(" + strings.Join(parts, ", ") + ") " + f.Body.String()
}

// ImportKind distinguishes the shapes of import the engine supports
// translating versus rejects.
type ImportKind int

const (
	// ImportNamespace is `import * as N from "m"` → `N = require("m")`.
	ImportNamespace ImportKind = iota
	// ImportNamed is `import { a, b } from "m"` → `require("m")`.
	ImportNamed
	// ImportNamedRenamed is `import { a as b } from "m"`, rejected.
	ImportNamedRenamed
	// ImportOther is any other import shape, rejected.
	ImportOther
)

// ImportDecl is a source-file import statement.
type ImportDecl struct {
	base
	NamespaceName string // set when Shape == ImportNamespace
	ModulePath    string
	Shape         ImportKind
}

func NewImportDecl(tok token.Token, shape ImportKind, namespaceName, modulePath string) *ImportDecl {
	return &ImportDecl{base: base{Token: tok, kind: KindImportDecl}, Shape: shape, NamespaceName: namespaceName, ModulePath: modulePath}
}

func (*ImportDecl) statementNode()   {}
func (*ImportDecl) declarationNode() {}
func (i *ImportDecl) String() string {
	switch i.Shape {
	case ImportNamespace:
		return "import * as " + i.NamespaceName + " from \"" + i.ModulePath + "\";"
	default:
		return "import ... from \"" + i.ModulePath + "\";"
	}
}

// EnumMember is one `Name [= initializer]` entry of an enum declaration.
// Initializer is nil when the member's value is implied by auto-increment.
type EnumMember struct {
	Name        string
	Initializer Expression
}

// EnumDecl is a `enum Name { ... }` declaration.
type EnumDecl struct {
	base
	Name    *Identifier
	Members []EnumMember
}

func NewEnumDecl(tok token.Token, name *Identifier, members []EnumMember) *EnumDecl {
	return &EnumDecl{base: base{Token: tok, kind: KindEnumDecl}, Name: name, Members: members}
}

func (*EnumDecl) statementNode()   {}
func (*EnumDecl) declarationNode() {}
func (e *EnumDecl) String() string {
	var sb strings.Builder
	sb.WriteString("enum " + e.Name.Name + " { ")
	for i, m := range e.Members {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.Name)
	}
	sb.WriteString(" }")
	return sb.String()
}

// PropertyDecl is a class field declaration: `[static] name [= initializer];`
type PropertyDecl struct {
	base
	modifiers
	Name        *Identifier
	Initializer Expression // nil when the field has no initializer
}

func NewPropertyDecl(tok token.Token, name *Identifier, init Expression, static bool) *PropertyDecl {
	pd := &PropertyDecl{base: base{Token: tok, kind: KindPropertyDecl}, Name: name, Initializer: init}
	pd.IsStatic = static
	return pd
}

func (*PropertyDecl) statementNode()   {}
func (*PropertyDecl) declarationNode() {}
func (p *PropertyDecl) String() string {
	s := p.Name.Name
	if p.Initializer != nil {
		s += " = " + p.Initializer.String()
	}
	if p.IsStatic {
		s = "static " + s
	}
	return s + ";"
}

// ClassDecl is `class Name { properties; constructor; methods; }`
type ClassDecl struct {
	base
	Name        *Identifier
	Constructor *FunctionDecl // nil when the class has no explicit constructor
	Properties  []*PropertyDecl
	Methods     []*FunctionDecl
}

func NewClassDecl(tok token.Token, name *Identifier, ctor *FunctionDecl, props []*PropertyDecl, methods []*FunctionDecl) *ClassDecl {
	return &ClassDecl{base: base{Token: tok, kind: KindClassDecl}, Name: name, Constructor: ctor, Properties: props, Methods: methods}
}

func (*ClassDecl) statementNode()   {}
func (*ClassDecl) declarationNode() {}
func (c *ClassDecl) String() string {
	var sb strings.Builder
	sb.WriteString("class " + c.Name.Name + " {\n")
	for _, p := range c.Properties {
		sb.WriteString("  " + p.String() + "\n")
	}
	if c.Constructor != nil {
		sb.WriteString("  " + c.Constructor.String() + "\n")
	}
	for _, m := range c.Methods {
		sb.WriteString("  " + m.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// InterfaceDecl and TypeAliasDecl are parsed but always dropped by the
// statement translator: the engine only keeps them around so the
// "unsupported kind" error path never has to special-case their absence.
type InterfaceDecl struct {
	base
	Name *Identifier
}

func NewInterfaceDecl(tok token.Token, name *Identifier) *InterfaceDecl {
	return &InterfaceDecl{base: base{Token: tok, kind: KindInterfaceDecl}, Name: name}
}

func (*InterfaceDecl) statementNode()   {}
func (*InterfaceDecl) declarationNode() {}
func (i *InterfaceDecl) String() string { return "interface " + i.Name.Name + " { ... }" }

// TypeAliasDecl is `type Name = ...;`, always dropped.
type TypeAliasDecl struct {
	base
	Name *Identifier
}

func NewTypeAliasDecl(tok token.Token, name *Identifier) *TypeAliasDecl {
	return &TypeAliasDecl{base: base{Token: tok, kind: KindTypeAliasDecl}, Name: name}
}

func (*TypeAliasDecl) statementNode()   {}
func (*TypeAliasDecl) declarationNode() {}
func (t *TypeAliasDecl) String() string { return "type " + t.Name.Name + " = ...;" }
