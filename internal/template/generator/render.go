package generator

import (
	"strings"

	"golang.org/x/text/encoding"

	"github.com/tacogips/cobnew/internal/template/model"
)

// SplitLines splits text on LF, CRLF and CR. A trailing break does not
// produce an extra empty line, so "a\nb\n" and "a\nb" both yield [a b].
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// NormalizeLineEndings rejoins the lines of text with eol and terminates
// the last line. Text without any lines becomes a single eol.
func NormalizeLineEndings(text string, eol model.LineEnding) string {
	sep := eol.Literal()
	lines := SplitLines(text)
	if len(lines) == 0 {
		return sep
	}
	return strings.Join(lines, sep) + sep
}

// Render normalizes line endings and encodes the result with enc.
// A nil enc leaves the text as UTF-8.
func Render(text string, eol model.LineEnding, enc encoding.Encoding) ([]byte, error) {
	normalized := NormalizeLineEndings(text, eol)
	if enc == nil {
		return []byte(normalized), nil
	}

	data, err := enc.NewEncoder().Bytes([]byte(normalized))
	if err != nil {
		return nil, newGeneratorError(GeneratorEncodingFailed,
			"template text cannot be represented in the target encoding",
			"",
			err)
	}
	return data, nil
}
