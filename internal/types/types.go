// Package types models the type-checker service the transpile engine
// consumes as an opaque external collaborator: the engine never infers
// types itself, it only queries a Checker for the type of an expression
// node and reads a handful of flags off the result to decide primitive-type
// dispatch (string/array method and property rewrites) and enum-member
// flattening.
//
// Modeled the way a DWScript-style bytecode compiler queries its semantic
// analyzer, but kept to the narrow surface the engine actually needs, since
// reimplementing full type inference is out of scope for this tool.
package types

import "github.com/sl2tl/sl2tl/internal/ast"

// Flags is the bitset carried on a Type. The engine only ever tests String,
// StringLiteral, Object, and Array.
type Flags uint32

const (
	FlagNone Flags = 0
	// FlagString marks a `string`-typed expression.
	FlagString Flags = 1 << iota
	// FlagStringLiteral marks a string-literal-typed expression (narrower
	// than FlagString but treated identically for primitive dispatch).
	FlagStringLiteral
	// FlagObject marks any structural/reference type; combined with
	// FlagArray it identifies an array-shaped type.
	FlagObject
	// FlagArray marks an array type. Checker.IsArrayType inspects this.
	FlagArray
)

// Has reports whether f has every bit set in mask.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Any reports whether f has any bit set in mask.
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}

// SymbolFlags is the bitset carried on a Symbol.
type SymbolFlags uint32

const (
	SymbolFlagNone SymbolFlags = 0
	// SymbolFlagEnum marks a symbol that names an enum declaration, used to
	// distinguish `EnumName.Member` access from ordinary namespaced member
	// access in the property-access dispatch table.
	SymbolFlagEnum SymbolFlags = 1 << iota
)

// Symbol is the declaration a type's name resolves to.
type Symbol struct {
	EscapedName string
	Flags       SymbolFlags
}

// IsEnum reports whether the symbol names an enum declaration.
func (s Symbol) IsEnum() bool {
	return s.Flags&SymbolFlagEnum != 0
}

// Type is the minimal type shape the engine reads off an expression: a flag
// bitset and, when the type is a named type, its resolving symbol.
type Type struct {
	Symbol *Symbol
	Flags  Flags
}

// IsString reports whether t is a string or string-literal type.
func (t Type) IsString() bool {
	return t.Flags.Any(FlagString | FlagStringLiteral)
}

// Checker is the type-checker service the engine borrows from its host: a
// read-only reference the engine must not mutate, outlive, or call for
// anything beyond these two queries.
type Checker interface {
	// TypeAt returns the statically-resolved type of expr.
	TypeAt(expr ast.Expression) Type
	// IsArrayType reports whether t denotes an array type.
	IsArrayType(t Type) bool
}

// StaticChecker is a Checker backed by a precomputed node→Type table. It
// stands in for the host's real type-checker in tests and in any driver that
// already has type information attached out of band (e.g. a JSON AST with
// inline type annotations) — the engine itself never knows or cares which
// concrete Checker it was handed.
type StaticChecker struct {
	types map[ast.Expression]Type
}

// NewStaticChecker builds a StaticChecker with no recorded types; use
// Set to populate it before passing it to the engine.
func NewStaticChecker() *StaticChecker {
	return &StaticChecker{types: make(map[ast.Expression]Type)}
}

// Set records the type of expr for subsequent TypeAt lookups.
func (c *StaticChecker) Set(expr ast.Expression, t Type) {
	c.types[expr] = t
}

// TypeAt implements Checker. Unrecorded expressions report the zero Type
// (no flags, no symbol), matching an "unknown/unresolved" type.
func (c *StaticChecker) TypeAt(expr ast.Expression) Type {
	return c.types[expr]
}

// IsArrayType implements Checker by testing FlagArray.
func (c *StaticChecker) IsArrayType(t Type) bool {
	return t.Flags.Any(FlagArray)
}
