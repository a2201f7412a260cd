package minifier

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/parse/v2"
	parsecss "github.com/tdewolff/parse/v2/css"
)

const (
	mimeStylesheet   = "text/css"
	mimeDeclarations = "text/x-css-declarations"
)

type tdewolffStyles struct {
	once sync.Once
	m    *minify.M
}

// NewStyleMinifier returns a StyleMinifier backed by tdewolff/minify.
// LevelAggressive minifies a full stylesheet, LevelBasic a declaration list
// and LevelSafe only drops comments and whitespace between tokens.
// At LevelAggressive, top-level declarations are not a stylesheet and yield
// an empty result.
func NewStyleMinifier() StyleMinifier {
	return &tdewolffStyles{}
}

func (s *tdewolffStyles) init() {
	s.m = minify.New()
	s.m.Add(mimeStylesheet, &css.Minifier{})
	s.m.Add(mimeDeclarations, &css.Minifier{Inline: true})
}

func (s *tdewolffStyles) MinifyStyle(code string, level Level) (string, error) {
	s.once.Do(s.init)

	switch level {
	case LevelAggressive:
		if looseDeclarations(code) {
			return "", nil
		}
		return s.m.String(mimeStylesheet, code)
	case LevelBasic:
		return s.m.String(mimeDeclarations, code)
	case LevelSafe:
		return compactTokens(code)
	default:
		return "", fmt.Errorf("unknown style level %d", level)
	}
}

// compactTokens re-emits the CSS token stream without comments, keeping a
// single space wherever whitespace could be significant.
func compactTokens(code string) (string, error) {
	l := parsecss.NewLexer(parse.NewInputString(code))

	var b strings.Builder
	prev := parsecss.ErrorToken
	space := false
	for {
		tt, data := l.Next()
		switch tt {
		case parsecss.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return "", err
			}
			return b.String(), nil
		case parsecss.CommentToken, parsecss.WhitespaceToken:
			space = b.Len() > 0
			continue
		}

		if space && !separator(prev) && !separator(tt) && prev != parsecss.ColonToken {
			b.WriteByte(' ')
		}
		space = false
		b.Write(data)
		prev = tt
	}
}

// looseDeclarations reports whether code has a top-level statement that is
// neither an at-rule nor followed by a block, as in "color: red; margin: 0".
func looseDeclarations(code string) bool {
	l := parsecss.NewLexer(parse.NewInputString(code))

	depth := 0
	inStatement, atRule := false, false
	for {
		tt, _ := l.Next()
		switch tt {
		case parsecss.ErrorToken:
			return inStatement && !atRule
		case parsecss.CommentToken, parsecss.WhitespaceToken, parsecss.CDOToken, parsecss.CDCToken:
			continue
		case parsecss.LeftBraceToken:
			if depth == 0 {
				inStatement, atRule = false, false
			}
			depth++
			continue
		case parsecss.RightBraceToken:
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth > 0 {
			continue
		}

		switch tt {
		case parsecss.SemicolonToken:
			if inStatement && !atRule {
				return true
			}
			inStatement, atRule = false, false
		case parsecss.AtKeywordToken:
			if !inStatement {
				atRule = true
			}
			inStatement = true
		default:
			inStatement = true
		}
	}
}

// separator reports tokens around which whitespace never matters.
func separator(tt parsecss.TokenType) bool {
	switch tt {
	case parsecss.LeftBraceToken, parsecss.RightBraceToken, parsecss.SemicolonToken, parsecss.CommaToken:
		return true
	}
	return false
}
