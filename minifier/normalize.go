package minifier

import (
	"strings"
	"unicode"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize converts line endings to LF and trims surrounding whitespace
// (the ECMAScript set, see isJSSpace).
// A leading shebang line is kept verbatim and only the rest is trimmed.
func Normalize(code string) string {
	code = lineEndings.Replace(code)

	if !strings.HasPrefix(code, "#!") {
		code = trim(code)
		// Trimming can expose a shebang; treat it as one so a second pass is a no-op.
		if !strings.HasPrefix(code, "#!") {
			return code
		}
	}

	shebang, body, _ := strings.Cut(code, "\n")
	return shebang + "\n" + trim(body)
}

// CollapseBlankLines squeezes every run of line feeds into one.
// String literals are not special-cased.
func CollapseBlankLines(code string) string {
	for strings.Contains(code, "\n\n") {
		code = strings.ReplaceAll(code, "\n\n", "\n")
	}
	return code
}

// jsSpace is the whitespace and line terminator set of ECMAScript, which
// unlike unicode.IsSpace includes U+FEFF and excludes U+0085.
const jsSpace = `\t\n\v\f\r\p{Zs}\x{FEFF}\x{2028}\x{2029}`

func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func trim(s string) string {
	return strings.TrimFunc(s, isJSSpace)
}
