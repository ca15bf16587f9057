package errors_test

import (
	"strings"
	"testing"

	"github.com/sl2tl/sl2tl/internal/ast"
	"github.com/sl2tl/sl2tl/internal/errors"
	"github.com/sl2tl/sl2tl/internal/token"
)

func TestTranslationErrorFormatWithSource(t *testing.T) {
	tok := token.Token{Pos: token.Position{Line: 2, Column: 5}}
	node := ast.NewIdentifier(tok, "continue")
	err := errors.NewTranslationError(node, "continue is not supported").
		WithSource("let a = 1;\ncontinue;\n", "script.sl")

	got := err.Format(false)
	if !strings.Contains(got, "script.sl:2:5") {
		t.Errorf("Format() = %q, want it to contain %q", got, "script.sl:2:5")
	}
	if !strings.Contains(got, "continue;") {
		t.Errorf("Format() = %q, want it to contain the source line", got)
	}
	if !strings.Contains(got, "continue is not supported") {
		t.Errorf("Format() = %q, want it to contain the message", got)
	}
	if !strings.Contains(got, "node: Identifier") {
		t.Errorf("Format() = %q, want it to name the node kind", got)
	}
}

func TestTranslationErrorFormatWithoutSource(t *testing.T) {
	err := errors.NewTranslationError(nil, "unsupported construct")
	got := err.Format(false)
	if got != "error\nunsupported construct" {
		t.Errorf("Format() = %q, want %q", got, "error\nunsupported construct")
	}
}

func TestTranslationErrorErrorMatchesFormat(t *testing.T) {
	err := errors.NewTranslationError(nil, "boom")
	if err.Error() != err.Format(false) {
		t.Errorf("Error() = %q, want it to match Format(false) = %q", err.Error(), err.Format(false))
	}
}

func TestReportHasErrors(t *testing.T) {
	report := &errors.Report{}
	if report.HasErrors() {
		t.Errorf("HasErrors() = true on empty report, want false")
	}

	report.Add(errors.NewTranslationError(nil, "first"))
	if !report.HasErrors() {
		t.Errorf("HasErrors() = false after Add, want true")
	}
}

func TestReportFormatSingleError(t *testing.T) {
	report := &errors.Report{}
	report.Add(errors.NewTranslationError(nil, "only error"))

	got := report.Format(false)
	if strings.Contains(got, "translation failed with") {
		t.Errorf("Format() of a single-error report should not use the multi-error header, got %q", got)
	}
	if !strings.Contains(got, "only error") {
		t.Errorf("Format() = %q, want it to contain the error message", got)
	}
}

func TestReportFormatMultipleErrors(t *testing.T) {
	report := &errors.Report{}
	report.Add(errors.NewTranslationError(nil, "first error"))
	report.Add(errors.NewTranslationError(nil, "second error"))

	got := report.Format(false)
	if !strings.Contains(got, "translation failed with 2 error(s)") {
		t.Errorf("Format() = %q, want the multi-error header", got)
	}
	if !strings.Contains(got, "[1 of 2]") || !strings.Contains(got, "[2 of 2]") {
		t.Errorf("Format() = %q, want both errors numbered", got)
	}
}
