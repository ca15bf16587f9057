// Package transpile walks a type-checked source AST and emits the
// equivalent target-language text. It never parses or type-checks; both are
// supplied by the caller.
package transpile

import (
	"strings"

	"github.com/sl2tl/sl2tl/internal/config"
	"github.com/sl2tl/sl2tl/internal/errors"
	"github.com/sl2tl/sl2tl/internal/types"
)

// Context carries the engine's mutable translation state across one
// Transpile call: the borrowed type checker, the resolved output options,
// indentation depth, the running switch-label counter, and whether the
// current statement sequence is a switch-case body (which changes what
// `break` means).
type Context struct {
	checker            types.Checker
	options            config.EngineOptions
	report             *errors.Report
	currentSwitchLabel string
	indent             int
	switchCounter      int
	inSwitch           bool
}

// NewContext builds a Context ready to translate a source file.
func NewContext(checker types.Checker, options config.EngineOptions) *Context {
	return &Context{
		checker: checker,
		options: options.Resolved(),
		report:  &errors.Report{},
	}
}

// Checker returns the borrowed type-checker service.
func (c *Context) Checker() types.Checker { return c.checker }

// Options returns the resolved output options.
func (c *Context) Options() config.EngineOptions { return c.options }

// Report returns the accumulated translation errors.
func (c *Context) Report() *errors.Report { return c.report }

// Indent renders the current indentation as a string of spaces.
func (c *Context) Indent() string {
	return strings.Repeat(" ", c.indent*c.options.IndentWidth)
}

// Indented runs fn with the indentation depth increased by one level.
func (c *Context) Indented(fn func()) {
	c.indent++
	fn()
	c.indent--
}

// InSwitch reports whether the current statement sequence is a switch-case
// body.
func (c *Context) InSwitch() bool { return c.inSwitch }

// WithinSwitch runs fn with InSwitch true and label available through
// ctx.currentSwitchLabel, restoring both afterward. Switch bodies can nest
// (a switch inside a case), so the prior values are saved rather than
// assumed empty/false.
func (c *Context) WithinSwitch(label string, fn func()) {
	prevIn, prevLabel := c.inSwitch, c.currentSwitchLabel
	c.inSwitch = true
	c.currentSwitchLabel = label
	fn()
	c.inSwitch = prevIn
	c.currentSwitchLabel = prevLabel
}

// SwitchBase returns the switch counter's current value without advancing
// it. A switch with k clauses reads this once and calls
// AdvanceSwitchCounter(k) before translating its clause bodies, then numbers
// its case labels c, c+1, ..., c+k-1, so a nested or subsequent switch's
// labels never collide with this one's.
func (c *Context) SwitchBase() int {
	return c.switchCounter
}

// AdvanceSwitchCounter moves the switch counter past the k labels a
// just-translated switch consumed.
func (c *Context) AdvanceSwitchCounter(k int) {
	c.switchCounter += k
}
