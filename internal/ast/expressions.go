package ast

import (
	"strings"

	"github.com/sl2tl/sl2tl/internal/token"
)

// Identifier is a bare name reference: a variable, function, class, or enum
// member name.
type Identifier struct {
	base
	Name string
}

func NewIdentifier(tok token.Token, name string) *Identifier {
	return &Identifier{base: base{Token: tok, kind: KindIdentifier}, Name: name}
}

func (*Identifier) expressionNode()  {}
func (i *Identifier) String() string { return i.Name }

// ThisExpression is the `this` keyword, rewritten to `self` in TL member
// access.
type ThisExpression struct {
	base
}

func NewThisExpression(tok token.Token) *ThisExpression {
	return &ThisExpression{base: base{Token: tok, kind: KindThisExpression}}
}

func (*ThisExpression) expressionNode() {}
func (*ThisExpression) String() string  { return "this" }

// StringLiteral is a quoted string literal. Value holds the unescaped text;
// the engine re-quotes and re-escapes it for TL.
type StringLiteral struct {
	base
	Value string
}

func NewStringLiteral(tok token.Token, value string) *StringLiteral {
	return &StringLiteral{base: base{Token: tok, kind: KindStringLiteral}, Value: value}
}

func (*StringLiteral) expressionNode()  {}
func (s *StringLiteral) String() string { return `"` + s.Value + `"` }

// NumericLiteral carries the literal's original source text, emitted
// unchanged.
type NumericLiteral struct {
	base
	Text string
}

func NewNumericLiteral(tok token.Token, text string) *NumericLiteral {
	return &NumericLiteral{base: base{Token: tok, kind: KindNumericLiteral}, Text: text}
}

func (*NumericLiteral) expressionNode()  {}
func (n *NumericLiteral) String() string { return n.Text }

// BooleanLiteral is the `true` or `false` keyword.
type BooleanLiteral struct {
	base
	Value bool
}

func NewBooleanLiteral(tok token.Token, value bool) *BooleanLiteral {
	return &BooleanLiteral{base: base{Token: tok, kind: KindBooleanLiteral}, Value: value}
}

func (*BooleanLiteral) expressionNode() {}
func (b *BooleanLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// BinaryExpression is `left OP right`. Operator holds the SL source token
// text (e.g. "+=", "&&", "===") — rewriting it to TL is the expression
// translator's job, not this node's.
type BinaryExpression struct {
	base
	Left     Expression
	Right    Expression
	Operator string
}

func NewBinaryExpression(tok token.Token, left Expression, op string, right Expression) *BinaryExpression {
	return &BinaryExpression{base: base{Token: tok, kind: KindBinaryExpression}, Left: left, Operator: op, Right: right}
}

func (*BinaryExpression) expressionNode() {}
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// UnaryExpression is a prefix or postfix `++`, `--`, `!`, `-`, or `+`.
// Prefix is false for postfix operators; the engine does not preserve the
// value-producing distinction between the two forms.
type UnaryExpression struct {
	base
	Operand  Expression
	Operator string
	Prefix   bool
}

func NewUnaryExpression(tok token.Token, op string, operand Expression, prefix bool) *UnaryExpression {
	return &UnaryExpression{base: base{Token: tok, kind: KindUnaryExpression}, Operator: op, Operand: operand, Prefix: prefix}
}

func (*UnaryExpression) expressionNode() {}
func (u *UnaryExpression) String() string {
	if u.Prefix {
		return u.Operator + u.Operand.String()
	}
	return u.Operand.String() + u.Operator
}

// ConditionalExpression is SL's `cond ? whenTrue : whenFalse` ternary,
// translated to a lazy ITE(...) call.
type ConditionalExpression struct {
	base
	Condition Expression
	WhenTrue  Expression
	WhenFalse Expression
}

func NewConditionalExpression(tok token.Token, cond, whenTrue, whenFalse Expression) *ConditionalExpression {
	return &ConditionalExpression{base: base{Token: tok, kind: KindConditionalExpression}, Condition: cond, WhenTrue: whenTrue, WhenFalse: whenFalse}
}

func (*ConditionalExpression) expressionNode() {}
func (c *ConditionalExpression) String() string {
	return c.Condition.String() + " ? " + c.WhenTrue.String() + " : " + c.WhenFalse.String()
}

// CallExpression is `callee(args...)`.
type CallExpression struct {
	base
	Callee    Expression
	Arguments []Expression
}

func NewCallExpression(tok token.Token, callee Expression, args []Expression) *CallExpression {
	return &CallExpression{base: base{Token: tok, kind: KindCallExpression}, Callee: callee, Arguments: args}
}

func (*CallExpression) expressionNode() {}
func (c *CallExpression) String() string {
	parts := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// PropertyAccessExpression is `object.name`.
type PropertyAccessExpression struct {
	base
	Object Expression
	Name   string
}

func NewPropertyAccessExpression(tok token.Token, object Expression, name string) *PropertyAccessExpression {
	return &PropertyAccessExpression{base: base{Token: tok, kind: KindPropertyAccessExpression}, Object: object, Name: name}
}

func (*PropertyAccessExpression) expressionNode() {}
func (p *PropertyAccessExpression) String() string {
	return p.Object.String() + "." + p.Name
}

// ElementAccessExpression is `object[index]`, 1-indexed on output when the
// receiver is an array type.
type ElementAccessExpression struct {
	base
	Object Expression
	Index  Expression
}

func NewElementAccessExpression(tok token.Token, object, index Expression) *ElementAccessExpression {
	return &ElementAccessExpression{base: base{Token: tok, kind: KindElementAccessExpression}, Object: object, Index: index}
}

func (*ElementAccessExpression) expressionNode() {}
func (e *ElementAccessExpression) String() string {
	return e.Object.String() + "[" + e.Index.String() + "]"
}

// NewExpression is `new Callee(args...)`.
type NewExpression struct {
	base
	Callee    Expression
	Arguments []Expression
}

func NewNewExpression(tok token.Token, callee Expression, args []Expression) *NewExpression {
	return &NewExpression{base: base{Token: tok, kind: KindNewExpression}, Callee: callee, Arguments: args}
}

func (*NewExpression) expressionNode() {}
func (n *NewExpression) String() string {
	parts := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		parts[i] = a.String()
	}
	return "new " + n.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}

// ArrayLiteralExpression is `[a, b, c]`.
type ArrayLiteralExpression struct {
	base
	Elements []Expression
}

func NewArrayLiteralExpression(tok token.Token, elems []Expression) *ArrayLiteralExpression {
	return &ArrayLiteralExpression{base: base{Token: tok, kind: KindArrayLiteralExpression}, Elements: elems}
}

func (*ArrayLiteralExpression) expressionNode() {}
func (a *ArrayLiteralExpression) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ObjectProperty is one `key: value` or shorthand `name` entry of an object
// literal. IsIdentifierKey distinguishes a bare identifier key (emitted as
// `key = value`) from a computed key expression (emitted as `[expr] = value`).
type ObjectProperty struct {
	Key             Expression
	Value           Expression
	Name            string
	IsIdentifierKey bool
}

// ObjectLiteralExpression is `{ k: v, ... }`.
type ObjectLiteralExpression struct {
	base
	Properties []ObjectProperty
}

func NewObjectLiteralExpression(tok token.Token, props []ObjectProperty) *ObjectLiteralExpression {
	return &ObjectLiteralExpression{base: base{Token: tok, kind: KindObjectLiteralExpression}, Properties: props}
}

func (*ObjectLiteralExpression) expressionNode() {}
func (o *ObjectLiteralExpression) String() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		if p.IsIdentifierKey {
			parts[i] = p.Name + ": " + p.Value.String()
		} else {
			parts[i] = "[" + p.Key.String() + "]: " + p.Value.String()
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FunctionExpression is an anonymous `function(params) { body }` value.
type FunctionExpression struct {
	base
	Parameters []*ParameterDecl
	Body       *BlockStatement
}

func NewFunctionExpression(tok token.Token, params []*ParameterDecl, body *BlockStatement) *FunctionExpression {
	return &FunctionExpression{base: base{Token: tok, kind: KindFunctionExpression}, Parameters: params, Body: body}
}

func (*FunctionExpression) expressionNode() {}
func (f *FunctionExpression) String() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		parts[i] = p.Name.Name
	}
	return "function(" + strings.Join(parts, ", ") + ") " + f.Body.String()
}

// TypeAssertionExpression is `<expr> as T`, transparently unwrapped by the
// expression translator.
type TypeAssertionExpression struct {
	base
	Expression Expression
	TypeName   string
}

func NewTypeAssertionExpression(tok token.Token, expr Expression, typeName string) *TypeAssertionExpression {
	return &TypeAssertionExpression{base: base{Token: tok, kind: KindTypeAssertionExpression}, Expression: expr, TypeName: typeName}
}

func (*TypeAssertionExpression) expressionNode() {}
func (t *TypeAssertionExpression) String() string {
	return "(" + t.Expression.String() + " as " + t.TypeName + ")"
}
