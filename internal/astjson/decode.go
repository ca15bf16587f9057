// Package astjson decodes a JSON-serialized AST into internal/ast nodes.
// Parsing SL source text is out of this tool's scope, so the CLI's input
// format is the already-parsed, already-type-checked tree a host parser
// would hand the engine, serialized as plain JSON instead of passed
// in-process. Each expression node may carry inline type flags; Decode
// collects them into a types.StaticChecker so the translation engine still
// sees type information through the same Checker interface it would if
// wired to a live host type-checker.
package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/sl2tl/sl2tl/internal/ast"
	"github.com/sl2tl/sl2tl/internal/token"
	"github.com/sl2tl/sl2tl/internal/types"
)

// rawNode is the wire shape of one AST node. Every node kind uses the same
// struct; which fields are populated depends on Kind.
type rawNode struct {
	Kind            string    `json:"kind"`
	Name            string    `json:"name"`
	Value           string    `json:"value"`
	Text            string    `json:"text"`
	Operator        string    `json:"operator"`
	ImportKind      string    `json:"importKind"`
	ModulePath      string    `json:"modulePath"`
	NamespaceName   string    `json:"namespaceName"`
	TypeName        string    `json:"typeName"`
	Bool            bool      `json:"bool"`
	Prefix          bool      `json:"prefix"`
	Static          bool      `json:"static"`
	Declare         bool      `json:"declare"`
	IsDefault       bool      `json:"isDefault"`
	IsIdentifierKey bool      `json:"isIdentifierKey"`
	IsArrayType     bool      `json:"isArrayType"`
	IsStringType    bool      `json:"isStringType"`
	IsEnumType      bool      `json:"isEnumType"`
	Pos             rawPos    `json:"pos"`
	Statements      []rawNode `json:"statements"`
	Declarations    []rawNode `json:"declarations"`
	Parameters      []rawNode `json:"parameters"`
	Arguments       []rawNode `json:"arguments"`
	Elements        []rawNode `json:"elements"`
	Properties      []rawNode `json:"properties"`
	Methods         []rawNode `json:"methods"`
	Members         []rawNode `json:"members"`
	Cases           []rawNode `json:"cases"`
	Left            *rawNode  `json:"left"`
	Right           *rawNode  `json:"right"`
	Operand         *rawNode  `json:"operand"`
	Condition       *rawNode  `json:"condition"`
	Consequence     *rawNode  `json:"consequence"`
	Alternative     *rawNode  `json:"alternative"`
	WhenTrue        *rawNode  `json:"whenTrue"`
	WhenFalse       *rawNode  `json:"whenFalse"`
	Callee          *rawNode  `json:"callee"`
	Object          *rawNode  `json:"object"`
	Index           *rawNode  `json:"index"`
	Body            *rawNode  `json:"body"`
	Init            *rawNode  `json:"init"`
	Incr            *rawNode  `json:"incr"`
	Cond            *rawNode  `json:"cond"`
	Variable        *rawNode  `json:"variable"`
	Iterable        *rawNode  `json:"iterable"`
	Initializer     *rawNode  `json:"initializer"`
	Constructor     *rawNode  `json:"constructor"`
	Discriminant    *rawNode  `json:"discriminant"`
	Expression      *rawNode  `json:"expression"`
	Key             *rawNode  `json:"key"`
}

type rawPos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p rawPos) toPosition() token.Position {
	return token.Position{Line: p.Line, Column: p.Column}
}

func (n rawNode) tok() token.Token {
	return token.Token{Literal: n.Text, Pos: n.Pos.toPosition()}
}

// decoder threads a types.StaticChecker through the recursive descent so
// every expression's inline type flags end up queryable by the node
// identity the engine will later hold, exactly as if a live host
// type-checker had been consulted.
type decoder struct {
	checker *types.StaticChecker
}

// Decode parses data as a JSON-encoded source file and builds the
// corresponding *ast.SourceFile along with a Checker reflecting any inline
// type annotations the JSON carried.
func Decode(data []byte) (*ast.SourceFile, types.Checker, error) {
	var root rawNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("decode ast json: %w", err)
	}
	if root.Kind != "" && root.Kind != "SourceFile" {
		return nil, nil, fmt.Errorf("decode ast json: expected root kind SourceFile, got %s", root.Kind)
	}

	d := &decoder{checker: types.NewStaticChecker()}
	stmts, err := d.toStatements(root.Statements)
	if err != nil {
		return nil, nil, err
	}
	return ast.NewSourceFile(stmts), d.checker, nil
}

func (d *decoder) toStatements(nodes []rawNode) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(nodes))
	for _, n := range nodes {
		s, err := d.toStatement(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) toExpressions(nodes []rawNode) ([]ast.Expression, error) {
	out := make([]ast.Expression, 0, len(nodes))
	for _, n := range nodes {
		e, err := d.toExpression(n)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (d *decoder) optExpr(n *rawNode) (ast.Expression, error) {
	if n == nil {
		return nil, nil
	}
	return d.toExpression(*n)
}

func (d *decoder) optStmt(n *rawNode) (ast.Statement, error) {
	if n == nil {
		return nil, nil
	}
	return d.toStatement(*n)
}

func toIdentifier(n *rawNode) (*ast.Identifier, error) {
	if n == nil {
		return nil, nil
	}
	return ast.NewIdentifier(n.tok(), n.Name), nil
}

func (d *decoder) toBlock(n *rawNode) (*ast.BlockStatement, error) {
	if n == nil {
		return ast.NewBlockStatement(token.Token{}, nil), nil
	}
	s, err := d.toStatement(*n)
	if err != nil {
		return nil, err
	}
	block, ok := s.(*ast.BlockStatement)
	if !ok {
		return nil, fmt.Errorf("decode ast json: expected block statement, got %s", n.Kind)
	}
	return block, nil
}

func (d *decoder) toParameters(nodes []rawNode) ([]*ast.ParameterDecl, error) {
	out := make([]*ast.ParameterDecl, 0, len(nodes))
	for _, n := range nodes {
		name, err := toIdentifier(&n)
		if err != nil {
			return nil, err
		}
		out = append(out, ast.NewParameterDecl(n.tok(), name))
	}
	return out, nil
}

func (d *decoder) toVariableDecls(nodes []rawNode) ([]*ast.VariableDecl, error) {
	out := make([]*ast.VariableDecl, 0, len(nodes))
	for _, n := range nodes {
		name, err := toIdentifier(&rawNode{Name: n.Name, Pos: n.Pos, Text: n.Text})
		if err != nil {
			return nil, err
		}
		init, err := d.optExpr(n.Initializer)
		if err != nil {
			return nil, err
		}
		out = append(out, ast.NewVariableDecl(n.tok(), name, init))
	}
	return out, nil
}

// recordType stashes n's inline type flags on the checker, keyed by the
// built expression's identity.
func (d *decoder) recordType(n rawNode, expr ast.Expression) {
	if !n.IsArrayType && !n.IsStringType && !n.IsEnumType {
		return
	}
	var flags types.Flags
	if n.IsArrayType {
		flags |= types.FlagObject | types.FlagArray
	}
	if n.IsStringType {
		flags |= types.FlagString
	}
	var symbol *types.Symbol
	if n.IsEnumType {
		symbol = &types.Symbol{Flags: types.SymbolFlagEnum}
	}
	d.checker.Set(expr, types.Type{Flags: flags, Symbol: symbol})
}

func (d *decoder) toExpression(n rawNode) (ast.Expression, error) {
	expr, err := d.buildExpression(n)
	if err != nil {
		return nil, err
	}
	d.recordType(n, expr)
	return expr, nil
}

func (d *decoder) buildExpression(n rawNode) (ast.Expression, error) {
	switch n.Kind {
	case "Identifier":
		return ast.NewIdentifier(n.tok(), n.Name), nil
	case "ThisExpression":
		return ast.NewThisExpression(n.tok()), nil
	case "StringLiteral":
		return ast.NewStringLiteral(n.tok(), n.Value), nil
	case "NumericLiteral":
		return ast.NewNumericLiteral(n.tok(), n.Text), nil
	case "BooleanLiteral":
		return ast.NewBooleanLiteral(n.tok(), n.Bool), nil
	case "BinaryExpression":
		left, err := d.toExpression(*n.Left)
		if err != nil {
			return nil, err
		}
		right, err := d.toExpression(*n.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(n.tok(), left, n.Operator, right), nil
	case "UnaryExpression":
		operand, err := d.toExpression(*n.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(n.tok(), n.Operator, operand, n.Prefix), nil
	case "ConditionalExpression":
		cond, err := d.toExpression(*n.Condition)
		if err != nil {
			return nil, err
		}
		whenTrue, err := d.toExpression(*n.WhenTrue)
		if err != nil {
			return nil, err
		}
		whenFalse, err := d.toExpression(*n.WhenFalse)
		if err != nil {
			return nil, err
		}
		return ast.NewConditionalExpression(n.tok(), cond, whenTrue, whenFalse), nil
	case "CallExpression":
		callee, err := d.toExpression(*n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := d.toExpressions(n.Arguments)
		if err != nil {
			return nil, err
		}
		return ast.NewCallExpression(n.tok(), callee, args), nil
	case "PropertyAccessExpression":
		object, err := d.toExpression(*n.Object)
		if err != nil {
			return nil, err
		}
		return ast.NewPropertyAccessExpression(n.tok(), object, n.Name), nil
	case "ElementAccessExpression":
		object, err := d.toExpression(*n.Object)
		if err != nil {
			return nil, err
		}
		index, err := d.toExpression(*n.Index)
		if err != nil {
			return nil, err
		}
		return ast.NewElementAccessExpression(n.tok(), object, index), nil
	case "NewExpression":
		callee, err := d.toExpression(*n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := d.toExpressions(n.Arguments)
		if err != nil {
			return nil, err
		}
		return ast.NewNewExpression(n.tok(), callee, args), nil
	case "ArrayLiteralExpression":
		elems, err := d.toExpressions(n.Elements)
		if err != nil {
			return nil, err
		}
		return ast.NewArrayLiteralExpression(n.tok(), elems), nil
	case "ObjectLiteralExpression":
		props := make([]ast.ObjectProperty, 0, len(n.Properties))
		for _, p := range n.Properties {
			if p.Initializer == nil {
				return nil, fmt.Errorf("decode ast json: object literal property missing value")
			}
			value, err := d.toExpression(*p.Initializer)
			if err != nil {
				return nil, err
			}
			if p.IsIdentifierKey {
				props = append(props, ast.ObjectProperty{Name: p.Name, Value: value, IsIdentifierKey: true})
				continue
			}
			key, err := d.toExpression(*p.Key)
			if err != nil {
				return nil, err
			}
			props = append(props, ast.ObjectProperty{Key: key, Value: value})
		}
		return ast.NewObjectLiteralExpression(n.tok(), props), nil
	case "FunctionExpression":
		params, err := d.toParameters(n.Parameters)
		if err != nil {
			return nil, err
		}
		body, err := d.toBlock(n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionExpression(n.tok(), params, body), nil
	case "TypeAssertionExpression":
		inner, err := d.toExpression(*n.Expression)
		if err != nil {
			return nil, err
		}
		return ast.NewTypeAssertionExpression(n.tok(), inner, n.TypeName), nil
	default:
		return nil, fmt.Errorf("decode ast json: unsupported expression kind %q", n.Kind)
	}
}

func (d *decoder) toStatement(n rawNode) (ast.Statement, error) {
	switch n.Kind {
	case "BlockStatement":
		stmts, err := d.toStatements(n.Statements)
		if err != nil {
			return nil, err
		}
		return ast.NewBlockStatement(n.tok(), stmts), nil
	case "ExpressionStatement":
		expr, err := d.toExpression(*n.Expression)
		if err != nil {
			return nil, err
		}
		return ast.NewExpressionStatement(n.tok(), expr), nil
	case "ReturnStatement":
		value, err := d.optExpr(n.Expression)
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStatement(n.tok(), value), nil
	case "BreakStatement":
		return ast.NewBreakStatement(n.tok()), nil
	case "ContinueStatement":
		return ast.NewContinueStatement(n.tok()), nil
	case "IfStatement":
		cond, err := d.toExpression(*n.Condition)
		if err != nil {
			return nil, err
		}
		cons, err := d.toStatement(*n.Consequence)
		if err != nil {
			return nil, err
		}
		alt, err := d.optStmt(n.Alternative)
		if err != nil {
			return nil, err
		}
		return ast.NewIfStatement(n.tok(), cond, cons, alt), nil
	case "WhileStatement":
		cond, err := d.toExpression(*n.Condition)
		if err != nil {
			return nil, err
		}
		body, err := d.toStatement(*n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewWhileStatement(n.tok(), cond, body), nil
	case "ForStatement":
		init, err := d.toStatement(*n.Init)
		if err != nil {
			return nil, err
		}
		cond, err := d.optExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		incr, err := d.optExpr(n.Incr)
		if err != nil {
			return nil, err
		}
		body, err := d.toStatement(*n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewForStatement(n.tok(), init, cond, incr, body), nil
	case "ForOfStatement":
		variable, err := toIdentifier(n.Variable)
		if err != nil {
			return nil, err
		}
		iterable, err := d.toExpression(*n.Iterable)
		if err != nil {
			return nil, err
		}
		body, err := d.toStatement(*n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewForOfStatement(n.tok(), variable, iterable, body), nil
	case "ForInStatement":
		variable, err := toIdentifier(n.Variable)
		if err != nil {
			return nil, err
		}
		object, err := d.toExpression(*n.Object)
		if err != nil {
			return nil, err
		}
		body, err := d.toStatement(*n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewForInStatement(n.tok(), variable, object, body), nil
	case "SwitchStatement":
		disc, err := d.toExpression(*n.Discriminant)
		if err != nil {
			return nil, err
		}
		cases := make([]*ast.SwitchCase, 0, len(n.Cases))
		for _, c := range n.Cases {
			value, err := d.optExpr(c.Condition)
			if err != nil {
				return nil, err
			}
			stmts, err := d.toStatements(c.Statements)
			if err != nil {
				return nil, err
			}
			cases = append(cases, &ast.SwitchCase{Value: value, Statements: stmts, IsDefault: c.IsDefault})
		}
		return ast.NewSwitchStatement(n.tok(), disc, cases), nil
	case "VariableStatement":
		decls, err := d.toVariableDecls(n.Declarations)
		if err != nil {
			return nil, err
		}
		return ast.NewVariableStatement(n.tok(), decls), nil
	case "ImportDecl":
		var shape ast.ImportKind
		switch n.ImportKind {
		case "namespace":
			shape = ast.ImportNamespace
		case "named":
			shape = ast.ImportNamed
		case "namedRenamed":
			shape = ast.ImportNamedRenamed
		default:
			shape = ast.ImportOther
		}
		return ast.NewImportDecl(n.tok(), shape, n.NamespaceName, n.ModulePath), nil
	case "EnumDecl":
		name, err := toIdentifier(&rawNode{Name: n.Name, Pos: n.Pos})
		if err != nil {
			return nil, err
		}
		members := make([]ast.EnumMember, 0, len(n.Members))
		for _, m := range n.Members {
			init, err := d.optExpr(m.Initializer)
			if err != nil {
				return nil, err
			}
			members = append(members, ast.EnumMember{Name: m.Name, Initializer: init})
		}
		return ast.NewEnumDecl(n.tok(), name, members), nil
	case "ClassDecl":
		name, err := toIdentifier(&rawNode{Name: n.Name, Pos: n.Pos})
		if err != nil {
			return nil, err
		}
		var ctor *ast.FunctionDecl
		if n.Constructor != nil {
			s, err := d.toStatement(*n.Constructor)
			if err != nil {
				return nil, err
			}
			fd, ok := s.(*ast.FunctionDecl)
			if !ok {
				return nil, fmt.Errorf("decode ast json: expected constructor to be a FunctionDecl")
			}
			ctor = fd
		}
		props := make([]*ast.PropertyDecl, 0, len(n.Properties))
		for _, p := range n.Properties {
			pname, err := toIdentifier(&rawNode{Name: p.Name, Pos: p.Pos})
			if err != nil {
				return nil, err
			}
			init, err := d.optExpr(p.Initializer)
			if err != nil {
				return nil, err
			}
			props = append(props, ast.NewPropertyDecl(p.tok(), pname, init, p.Static))
		}
		methods := make([]*ast.FunctionDecl, 0, len(n.Methods))
		for _, m := range n.Methods {
			s, err := d.toStatement(m)
			if err != nil {
				return nil, err
			}
			fd, ok := s.(*ast.FunctionDecl)
			if !ok {
				return nil, fmt.Errorf("decode ast json: expected method to be a FunctionDecl")
			}
			methods = append(methods, fd)
		}
		return ast.NewClassDecl(n.tok(), name, ctor, props, methods), nil
	case "FunctionDecl":
		name, err := toIdentifier(&rawNode{Name: n.Name, Pos: n.Pos})
		if err != nil {
			return nil, err
		}
		params, err := d.toParameters(n.Parameters)
		if err != nil {
			return nil, err
		}
		body, err := d.toBlock(n.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionDecl(n.tok(), name, params, body), nil
	case "InterfaceDecl":
		name, err := toIdentifier(&rawNode{Name: n.Name, Pos: n.Pos})
		if err != nil {
			return nil, err
		}
		return ast.NewInterfaceDecl(n.tok(), name), nil
	case "TypeAliasDecl":
		name, err := toIdentifier(&rawNode{Name: n.Name, Pos: n.Pos})
		if err != nil {
			return nil, err
		}
		return ast.NewTypeAliasDecl(n.tok(), name), nil
	default:
		return nil, fmt.Errorf("decode ast json: unsupported statement kind %q", n.Kind)
	}
}
