package transpile

import "testing"

func TestRewriteBinaryOperator(t *testing.T) {
	cases := map[string]string{
		"===": "==",
		"!==": "~=",
		"!=":  "~=",
		"&&":  "and",
		"||":  "or",
		"==":  "==",
		"+":   "+",
		"<=":  "<=",
	}
	for op, want := range cases {
		got, ok := RewriteBinaryOperator(op)
		if !ok {
			t.Errorf("RewriteBinaryOperator(%q) ok = false, want true", op)
			continue
		}
		if got != want {
			t.Errorf("RewriteBinaryOperator(%q) = %q, want %q", op, got, want)
		}
	}
}

func TestRewriteBinaryOperatorRejectsUnknown(t *testing.T) {
	if _, ok := RewriteBinaryOperator("+="); ok {
		t.Errorf("RewriteBinaryOperator(%q) ok = true, want false (compound assignment)", "+=")
	}
}

func TestRewriteUnaryOperator(t *testing.T) {
	if got, ok := RewriteUnaryOperator("!"); !ok || got != "not " {
		t.Errorf("RewriteUnaryOperator(!) = (%q, %v), want (%q, true)", got, ok, "not ")
	}
	if got, ok := RewriteUnaryOperator("-"); !ok || got != "-" {
		t.Errorf("RewriteUnaryOperator(-) = (%q, %v), want (%q, true)", got, ok, "-")
	}
	if got, ok := RewriteUnaryOperator("+"); !ok || got != "" {
		t.Errorf("RewriteUnaryOperator(+) = (%q, %v), want (%q, true)", got, ok, "")
	}
	if _, ok := RewriteUnaryOperator("~"); ok {
		t.Errorf("RewriteUnaryOperator(~) ok = true, want false")
	}
}

func TestIsBitwiseBinary(t *testing.T) {
	for _, op := range []string{"&", "|", "^", "<<", ">>", ">>>"} {
		if !IsBitwiseBinary(op) {
			t.Errorf("IsBitwiseBinary(%q) = false, want true", op)
		}
	}
	if IsBitwiseBinary("+") {
		t.Errorf("IsBitwiseBinary(+) = true, want false")
	}
}

func TestIsCompoundAssignmentAndBaseOperator(t *testing.T) {
	if !IsCompoundAssignment("+=") {
		t.Errorf("IsCompoundAssignment(+=) = false, want true")
	}
	if BaseOperator("+=") != "+" {
		t.Errorf("BaseOperator(+=) = %q, want %q", BaseOperator("+="), "+")
	}
	if IsCompoundAssignment("+") {
		t.Errorf("IsCompoundAssignment(+) = true, want false")
	}
}

func TestBitwiseCall(t *testing.T) {
	got := bitwiseCall("bit", "&", "a", "b")
	want := "bit.band(a, b)"
	if got != want {
		t.Errorf("bitwiseCall(&) = %q, want %q", got, want)
	}

	got = bitwiseCall("bit", "<<", "a", "2")
	want = "bit.lshift(a, 2)"
	if got != want {
		t.Errorf("bitwiseCall(<<) = %q, want %q", got, want)
	}
}
