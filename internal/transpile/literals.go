package transpile

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// escapeReplacer rewrites the characters a TL double-quoted string literal
// cannot contain verbatim. strings.Replacer makes a single pass over the
// input, so a backslash introduced by one escape is never escaped again.
var escapeReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// TranslateStringLiteral renders value as a TL double-quoted string literal.
// The source text is first normalized to NFC so that combining-character
// sequences from the SL source round-trip to a single canonical form
// instead of leaking SL's source encoding quirks into the emitted literal.
func TranslateStringLiteral(value string) string {
	normalized := norm.NFC.String(value)
	return `"` + escapeReplacer.Replace(normalized) + `"`
}

// TranslateNumericLiteral renders a numeric literal's original source text
// unchanged: SL and TL share enough numeric-literal grammar that no
// rewriting is needed.
func TranslateNumericLiteral(text string) string {
	return text
}

// TranslateBooleanLiteral renders a boolean literal.
func TranslateBooleanLiteral(value bool) string {
	if value {
		return "true"
	}
	return "false"
}
