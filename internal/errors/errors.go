// Package errors formats translation errors with source context, line/column
// information, and visual indicators (carets) pointing to the offending node.
package errors

import (
	"fmt"
	"strings"

	"github.com/sl2tl/sl2tl/internal/ast"
	"github.com/sl2tl/sl2tl/internal/token"
)

// TranslationError is a single translation failure tied to the AST node that
// triggered it: an unsupported node kind, a rejected statement shape (a
// renamed import, a continue), or an invalid for-header.
type TranslationError struct {
	Node    ast.Node
	Message string
	Source  string
	File    string
}

// NewTranslationError builds a TranslationError anchored on node.
func NewTranslationError(node ast.Node, message string) *TranslationError {
	return &TranslationError{Node: node, Message: message}
}

// WithSource attaches the original source text and file name so Format can
// render a caret under the offending column.
func (e *TranslationError) WithSource(source, file string) *TranslationError {
	e.Source = source
	e.File = file
	return e
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return e.Format(false)
}

func (e *TranslationError) pos() token.Position {
	if e.Node == nil {
		return token.Position{}
	}
	return e.Node.Pos()
}

// Format formats the error message with source context. If color is true,
// ANSI color codes are used for terminal output.
func (e *TranslationError) Format(color bool) string {
	var sb strings.Builder

	pos := e.pos()
	if e.File != "" {
		sb.WriteString(fmt.Sprintf("error in %s:%d:%d\n", e.File, pos.Line, pos.Column))
	} else if !pos.IsZero() {
		sb.WriteString(fmt.Sprintf("error at %d:%d\n", pos.Line, pos.Column))
	} else {
		sb.WriteString("error\n")
	}

	if sourceLine := e.getSourceLine(pos.Line); sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if e.Node != nil {
		sb.WriteString(fmt.Sprintf(" (node: %s)", ast.KindName(e.Node)))
	}
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *TranslationError) getSourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Report is an ordered collection of translation errors accumulated over one
// Transpile call. The engine does not stop at the first error in the
// file's top-level statement list — it keeps walking the remaining top-level
// statements so a caller sees an error from each one that fails — but a
// single translation error still aborts translation of the enclosing
// top-level statement, including any nested statements after it.
type Report struct {
	Errors []*TranslationError
}

// Add appends err to the report.
func (r *Report) Add(err *TranslationError) {
	r.Errors = append(r.Errors, err)
}

// HasErrors reports whether the report carries at least one error.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error implements the error interface so a non-empty Report can be returned
// directly as an error value.
func (r *Report) Error() string {
	return r.Format(false)
}

// Format renders every error in the report, numbered, separated by blank
// lines.
func (r *Report) Format(color bool) string {
	if len(r.Errors) == 0 {
		return ""
	}
	if len(r.Errors) == 1 {
		return r.Errors[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("translation failed with %d error(s):\n\n", len(r.Errors)))
	for i, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("[%d of %d] ", i+1, len(r.Errors)))
		sb.WriteString(err.Format(color))
		if i < len(r.Errors)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
