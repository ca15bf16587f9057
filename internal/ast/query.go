package ast

// Children enumerates n's immediate child nodes in source order. The
// statement/expression translators use typed field access directly and only
// reach for this when walking generically (diagnostics, debug dumps).
func Children(n Node) []Node {
	switch v := n.(type) {
	case *SourceFile:
		return statementsToNodes(v.Statements)
	case *BlockStatement:
		return statementsToNodes(v.Statements)
	case *IfStatement:
		out := []Node{v.Condition, v.Consequence}
		if v.Alternative != nil {
			out = append(out, v.Alternative)
		}
		return out
	case *WhileStatement:
		return []Node{v.Condition, v.Body}
	case *ForStatement:
		return []Node{v.Init, v.Cond, v.Incr, v.Body}
	case *ForOfStatement:
		return []Node{v.Variable, v.Iterable, v.Body}
	case *ForInStatement:
		return []Node{v.Variable, v.Object, v.Body}
	case *SwitchStatement:
		out := []Node{v.Discriminant}
		for _, c := range v.Cases {
			if c.Value != nil {
				out = append(out, c.Value)
			}
			out = append(out, statementsToNodes(c.Statements)...)
		}
		return out
	case *ReturnStatement:
		if v.Value == nil {
			return nil
		}
		return []Node{v.Value}
	case *ExpressionStatement:
		return []Node{v.Expression}
	case *VariableStatement:
		out := make([]Node, len(v.Declarations))
		for i, d := range v.Declarations {
			out[i] = d
		}
		return out
	case *ClassDecl:
		out := make([]Node, 0, len(v.Properties)+len(v.Methods)+1)
		for _, p := range v.Properties {
			out = append(out, p)
		}
		if v.Constructor != nil {
			out = append(out, v.Constructor)
		}
		for _, m := range v.Methods {
			out = append(out, m)
		}
		return out
	case *BinaryExpression:
		return []Node{v.Left, v.Right}
	case *UnaryExpression:
		return []Node{v.Operand}
	case *ConditionalExpression:
		return []Node{v.Condition, v.WhenTrue, v.WhenFalse}
	case *CallExpression:
		out := []Node{v.Callee}
		return append(out, expressionsToNodes(v.Arguments)...)
	case *PropertyAccessExpression:
		return []Node{v.Object}
	case *ElementAccessExpression:
		return []Node{v.Object, v.Index}
	case *NewExpression:
		out := []Node{v.Callee}
		return append(out, expressionsToNodes(v.Arguments)...)
	case *ArrayLiteralExpression:
		return expressionsToNodes(v.Elements)
	case *ObjectLiteralExpression:
		out := make([]Node, 0, len(v.Properties)*2)
		for _, p := range v.Properties {
			if !p.IsIdentifierKey {
				out = append(out, p.Key)
			}
			out = append(out, p.Value)
		}
		return out
	case *TypeAssertionExpression:
		return []Node{v.Expression}
	default:
		return nil
	}
}

func statementsToNodes(stmts []Statement) []Node {
	out := make([]Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}

func expressionsToNodes(exprs []Expression) []Node {
	out := make([]Node, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}

// FirstChildOfKind returns the first immediate child of n whose Kind matches
// k, or nil if none does.
func FirstChildOfKind(n Node, k Kind) Node {
	for _, c := range Children(n) {
		if c != nil && c.Kind() == k {
			return c
		}
	}
	return nil
}

// KindName names a node's kind symbolically, used to compose
// "unsupported AST node kind: X" translation errors.
func KindName(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.Kind().String()
}
