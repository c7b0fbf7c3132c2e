package norgfmt

import "strings"

// Format renders src, a Norg document, into its canonical form: normalized
// whitespace, consistent indentation, wrapped paragraph lines, and minimal
// inline delimiters. The result carries no surrounding whitespace and no
// trailing newline; callers append one when writing to a file or stream.
//
// The first structural error aborts the render with no partial output: a
// malformed tree means either a parser defect or an unsupported construct,
// and producing output would misrepresent both.
func Format(src []byte, opts ...Option) (string, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := ValidateInput(src); err != nil {
		return "", err
	}
	out, err := Render(Parse(src), src, cfg)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// FormatString is Format for string input.
func FormatString(src string, opts ...Option) (string, error) {
	return Format([]byte(src), opts...)
}
