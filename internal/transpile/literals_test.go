package transpile

import "testing"

func TestTranslateStringLiteralEscapes(t *testing.T) {
	cases := map[string]string{
		"hello":        `"hello"`,
		"a\"b":         `"a\"b"`,
		"a\\b":         `"a\\b"`,
		"line1\nline2": `"line1\nline2"`,
		"tab\there":    `"tab\there"`,
		"cr\rhere":     `"cr\rhere"`,
	}
	for input, want := range cases {
		if got := TranslateStringLiteral(input); got != want {
			t.Errorf("TranslateStringLiteral(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTranslateStringLiteralNormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent (NFD, two runes) normalizes to the single
	// precomposed code point U+00E9 (NFC) before escaping.
	decomposed := "é"
	composed := "é"

	got := TranslateStringLiteral(decomposed)
	want := `"` + composed + `"`
	if got != want {
		t.Errorf("TranslateStringLiteral(NFD input) = %q, want %q (NFC)", got, want)
	}
}

func TestTranslateNumericLiteralPassesThrough(t *testing.T) {
	if got := TranslateNumericLiteral("3.14"); got != "3.14" {
		t.Errorf("TranslateNumericLiteral(3.14) = %q, want %q", got, "3.14")
	}
}

func TestTranslateBooleanLiteral(t *testing.T) {
	if got := TranslateBooleanLiteral(true); got != "true" {
		t.Errorf("TranslateBooleanLiteral(true) = %q, want %q", got, "true")
	}
	if got := TranslateBooleanLiteral(false); got != "false" {
		t.Errorf("TranslateBooleanLiteral(false) = %q, want %q", got, "false")
	}
}
