package transpile

import (
	"testing"

	"github.com/sl2tl/sl2tl/internal/ast"
	"github.com/sl2tl/sl2tl/internal/token"
)

func numVarInit(name, start string) ast.Statement {
	decl := ast.NewVariableDecl(token.Token{}, ident(name), ast.NewNumericLiteral(token.Token{}, start))
	return ast.NewVariableStatement(token.Token{}, []*ast.VariableDecl{decl})
}

func forStmt(init ast.Statement, cond, incr ast.Expression) *ast.ForStatement {
	body := ast.NewBlockStatement(token.Token{}, nil)
	return ast.NewForStatement(token.Token{}, init, cond, incr, body)
}

func TestAnalyzeForHeaderAscendingExclusiveIncrement(t *testing.T) {
	ctx := newTestContext(nil)
	f := forStmt(
		numVarInit("i", "0"),
		ast.NewBinaryExpression(token.Token{}, ident("i"), "<", ast.NewNumericLiteral(token.Token{}, "10")),
		ast.NewUnaryExpression(token.Token{}, "++", ident("i"), false),
	)

	header, ok, err := AnalyzeForHeader(ctx, f)
	if err != nil {
		t.Fatalf("AnalyzeForHeader() error = %v", err)
	}
	if !ok {
		t.Fatal("AnalyzeForHeader() ok = false, want true")
	}
	if header.Variable != "i" || header.Start != "0" || header.Step != "1" {
		t.Fatalf("header = %+v, want Variable=i Start=0 Step=1", header)
	}
	if header.End != "(10) - 1" {
		t.Errorf("header.End = %q, want %q", header.End, "(10) - 1")
	}
}

func TestAnalyzeForHeaderAscendingInclusiveBound(t *testing.T) {
	ctx := newTestContext(nil)
	f := forStmt(
		numVarInit("i", "0"),
		ast.NewBinaryExpression(token.Token{}, ident("i"), "<=", ast.NewNumericLiteral(token.Token{}, "10")),
		ast.NewUnaryExpression(token.Token{}, "++", ident("i"), false),
	)

	header, ok, err := AnalyzeForHeader(ctx, f)
	if err != nil {
		t.Fatalf("AnalyzeForHeader() error = %v", err)
	}
	if !ok {
		t.Fatal("AnalyzeForHeader() ok = false, want true")
	}
	if header.End != "10" {
		t.Errorf("header.End = %q, want %q (no adjustment for an inclusive bound)", header.End, "10")
	}
}

func TestAnalyzeForHeaderDescendingWithDecrement(t *testing.T) {
	ctx := newTestContext(nil)
	f := forStmt(
		numVarInit("i", "10"),
		ast.NewBinaryExpression(token.Token{}, ident("i"), ">", ast.NewNumericLiteral(token.Token{}, "0")),
		ast.NewUnaryExpression(token.Token{}, "--", ident("i"), false),
	)

	header, ok, err := AnalyzeForHeader(ctx, f)
	if err != nil {
		t.Fatalf("AnalyzeForHeader() error = %v", err)
	}
	if !ok {
		t.Fatal("AnalyzeForHeader() ok = false, want true")
	}
	if header.Step != "-1" {
		t.Errorf("header.Step = %q, want %q", header.Step, "-1")
	}
	if header.End != "(0) + 1" {
		t.Errorf("header.End = %q, want %q", header.End, "(0) + 1")
	}
}

func TestAnalyzeForHeaderWithPlusEqualsStep(t *testing.T) {
	ctx := newTestContext(nil)
	f := forStmt(
		numVarInit("i", "0"),
		ast.NewBinaryExpression(token.Token{}, ident("i"), "<", ast.NewNumericLiteral(token.Token{}, "100")),
		ast.NewBinaryExpression(token.Token{}, ident("i"), "+=", ast.NewNumericLiteral(token.Token{}, "2")),
	)

	header, ok, err := AnalyzeForHeader(ctx, f)
	if err != nil {
		t.Fatalf("AnalyzeForHeader() error = %v", err)
	}
	if !ok {
		t.Fatal("AnalyzeForHeader() ok = false, want true")
	}
	if header.Step != "2" {
		t.Errorf("header.Step = %q, want %q", header.Step, "2")
	}
}

func TestAnalyzeForHeaderRejectsMismatchedStepDirection(t *testing.T) {
	ctx := newTestContext(nil)
	f := forStmt(
		numVarInit("i", "0"),
		ast.NewBinaryExpression(token.Token{}, ident("i"), "<", ast.NewNumericLiteral(token.Token{}, "10")),
		ast.NewUnaryExpression(token.Token{}, "--", ident("i"), false),
	)

	_, ok, err := AnalyzeForHeader(ctx, f)
	if err != nil {
		t.Fatalf("AnalyzeForHeader() error = %v", err)
	}
	if ok {
		t.Error("AnalyzeForHeader() ok = true, want false for a decrementing step under an ascending bound")
	}
}

func TestAnalyzeForHeaderRejectsNonComparisonCondition(t *testing.T) {
	ctx := newTestContext(nil)
	f := forStmt(
		numVarInit("i", "0"),
		ident("running"),
		ast.NewUnaryExpression(token.Token{}, "++", ident("i"), false),
	)

	_, ok, err := AnalyzeForHeader(ctx, f)
	if err != nil {
		t.Fatalf("AnalyzeForHeader() error = %v", err)
	}
	if ok {
		t.Error("AnalyzeForHeader() ok = true, want false for a non-comparison condition")
	}
}

func TestAnalyzeForHeaderRejectsNonConstantStepShape(t *testing.T) {
	ctx := newTestContext(nil)
	f := forStmt(
		numVarInit("i", "0"),
		ast.NewBinaryExpression(token.Token{}, ident("i"), "<", ast.NewNumericLiteral(token.Token{}, "10")),
		ast.NewBinaryExpression(token.Token{}, ident("i"), "*=", ast.NewNumericLiteral(token.Token{}, "2")),
	)

	_, ok, err := AnalyzeForHeader(ctx, f)
	if err != nil {
		t.Fatalf("AnalyzeForHeader() error = %v", err)
	}
	if ok {
		t.Error("AnalyzeForHeader() ok = true, want false for an unrecognized step shape (*=)")
	}
}

func TestAnalyzeForHeaderRejectsNonVariableInit(t *testing.T) {
	ctx := newTestContext(nil)
	f := forStmt(
		ast.NewExpressionStatement(token.Token{}, ast.NewCallExpression(token.Token{}, ident("setup"), nil)),
		ast.NewBinaryExpression(token.Token{}, ident("i"), "<", ast.NewNumericLiteral(token.Token{}, "10")),
		ast.NewUnaryExpression(token.Token{}, "++", ident("i"), false),
	)

	_, ok, err := AnalyzeForHeader(ctx, f)
	if err != nil {
		t.Fatalf("AnalyzeForHeader() error = %v", err)
	}
	if ok {
		t.Error("AnalyzeForHeader() ok = true, want false when init is not a single variable declaration")
	}
}
