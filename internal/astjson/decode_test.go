package astjson_test

import (
	"testing"

	"github.com/sl2tl/sl2tl/internal/ast"
	"github.com/sl2tl/sl2tl/internal/astjson"
)

func TestDecodeEmptySourceFile(t *testing.T) {
	file, checker, err := astjson.Decode([]byte(`{"kind":"SourceFile","statements":[]}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(file.Statements) != 0 {
		t.Errorf("Statements has %d entries, want 0", len(file.Statements))
	}
	if checker == nil {
		t.Errorf("Decode() returned a nil checker")
	}
}

func TestDecodeRejectsWrongRootKind(t *testing.T) {
	_, _, err := astjson.Decode([]byte(`{"kind":"BlockStatement","statements":[]}`))
	if err == nil {
		t.Fatal("Decode() error = nil, want an error for a non-SourceFile root")
	}
}

func TestDecodeVariableStatementWithBinaryExpression(t *testing.T) {
	doc := `{
		"kind": "SourceFile",
		"statements": [{
			"kind": "VariableStatement",
			"declarations": [{
				"name": "sum",
				"initializer": {
					"kind": "BinaryExpression",
					"operator": "+",
					"left": {"kind": "Identifier", "name": "a"},
					"right": {"kind": "Identifier", "name": "b"}
				}
			}]
		}]
	}`

	file, _, err := astjson.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(file.Statements) != 1 {
		t.Fatalf("Statements has %d entries, want 1", len(file.Statements))
	}

	varStmt, ok := file.Statements[0].(*ast.VariableStatement)
	if !ok {
		t.Fatalf("Statements[0] is %T, want *ast.VariableStatement", file.Statements[0])
	}
	if len(varStmt.Declarations) != 1 || varStmt.Declarations[0].Name.Name != "sum" {
		t.Fatalf("unexpected declarations: %+v", varStmt.Declarations)
	}

	bin, ok := varStmt.Declarations[0].Initializer.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("Initializer is %T, want *ast.BinaryExpression", varStmt.Declarations[0].Initializer)
	}
	if bin.Operator != "+" {
		t.Errorf("Operator = %q, want %q", bin.Operator, "+")
	}
}

func TestDecodePopulatesCheckerFromTypeFlags(t *testing.T) {
	doc := `{
		"kind": "SourceFile",
		"statements": [{
			"kind": "ExpressionStatement",
			"expression": {
				"kind": "ElementAccessExpression",
				"object": {"kind": "Identifier", "name": "items", "isArrayType": true},
				"index": {"kind": "NumericLiteral", "text": "0"}
			}
		}]
	}`

	file, checker, err := astjson.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	exprStmt := file.Statements[0].(*ast.ExpressionStatement)
	access := exprStmt.Expression.(*ast.ElementAccessExpression)

	typ := checker.TypeAt(access.Object)
	if !checker.IsArrayType(typ) {
		t.Errorf("IsArrayType(object type) = false, want true for isArrayType:true input")
	}
}

func TestDecodeClassWithConstructorAndMethod(t *testing.T) {
	doc := `{
		"kind": "SourceFile",
		"statements": [{
			"kind": "ClassDecl",
			"name": "Point",
			"properties": [{"name": "x"}, {"name": "y"}],
			"constructor": {
				"kind": "FunctionDecl",
				"name": "constructor",
				"parameters": [{"name": "x"}, {"name": "y"}],
				"body": {"kind": "BlockStatement", "statements": []}
			},
			"methods": [{
				"kind": "FunctionDecl",
				"name": "length",
				"parameters": [],
				"body": {"kind": "BlockStatement", "statements": []}
			}]
		}]
	}`

	file, _, err := astjson.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	class, ok := file.Statements[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("Statements[0] is %T, want *ast.ClassDecl", file.Statements[0])
	}
	if class.Name.Name != "Point" {
		t.Errorf("Name = %q, want %q", class.Name.Name, "Point")
	}
	if len(class.Properties) != 2 {
		t.Errorf("Properties has %d entries, want 2", len(class.Properties))
	}
	if class.Constructor == nil || len(class.Constructor.Parameters) != 2 {
		t.Fatalf("Constructor = %+v, want 2 parameters", class.Constructor)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Name != "length" {
		t.Fatalf("Methods = %+v, want one method named length", class.Methods)
	}
}

func TestDecodeSwitchStatement(t *testing.T) {
	doc := `{
		"kind": "SourceFile",
		"statements": [{
			"kind": "SwitchStatement",
			"discriminant": {"kind": "Identifier", "name": "x"},
			"cases": [
				{
					"condition": {"kind": "NumericLiteral", "text": "1"},
					"statements": [{"kind": "BreakStatement"}]
				},
				{
					"isDefault": true,
					"statements": [{"kind": "BreakStatement"}]
				}
			]
		}]
	}`

	file, _, err := astjson.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	sw, ok := file.Statements[0].(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("Statements[0] is %T, want *ast.SwitchStatement", file.Statements[0])
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("Cases has %d entries, want 2", len(sw.Cases))
	}
	if sw.Cases[0].Value == nil {
		t.Errorf("Cases[0].Value is nil, want the numeric literal")
	}
	if !sw.Cases[1].IsDefault {
		t.Errorf("Cases[1].IsDefault = false, want true")
	}
}

func TestDecodeRejectsUnsupportedExpressionKind(t *testing.T) {
	doc := `{
		"kind": "SourceFile",
		"statements": [{
			"kind": "ExpressionStatement",
			"expression": {"kind": "MysteryExpression"}
		}]
	}`
	_, _, err := astjson.Decode([]byte(doc))
	if err == nil {
		t.Fatal("Decode() error = nil, want an error for an unsupported expression kind")
	}
}
