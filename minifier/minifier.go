// Package minifier minifies web application sources in place.
//
// The format-specific work is delegated to engines behind small capability
// interfaces (ScriptMinifier, StyleMinifier, MarkupMinifier, DataMinifier).
// Default engines are built on esbuild, tdewolff/minify and goccy/go-json and
// set themselves up on first use. Python and shell sources are only
// normalized.
package minifier

import (
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Minifier struct {
	fs      afero.Fs
	log     *zap.Logger
	exclude []string
	dryRun  bool

	scripts ScriptMinifier
	styles  StyleMinifier
	markup  MarkupMinifier
	data    DataMinifier
}

type Option func(*Minifier)

func WithFs(fs afero.Fs) Option {
	return func(m *Minifier) { m.fs = fs }
}

func WithLogger(log *zap.Logger) Option {
	return func(m *Minifier) { m.log = log }
}

func WithScriptMinifier(s ScriptMinifier) Option {
	return func(m *Minifier) { m.scripts = s }
}

func WithStyleMinifier(s StyleMinifier) Option {
	return func(m *Minifier) { m.styles = s }
}

func WithMarkupMinifier(s MarkupMinifier) Option {
	return func(m *Minifier) { m.markup = s }
}

func WithDataMinifier(s DataMinifier) Option {
	return func(m *Minifier) { m.data = s }
}

// WithExclude skips paths matching any of the doublestar patterns,
// relative to the folder being minified.
func WithExclude(patterns ...string) Option {
	return func(m *Minifier) { m.exclude = append(m.exclude, patterns...) }
}

// WithDryRun transforms and logs every file without writing it back.
func WithDryRun(dryRun bool) Option {
	return func(m *Minifier) { m.dryRun = dryRun }
}

func New(opts ...Option) *Minifier {
	m := &Minifier{}
	for _, opt := range opts {
		opt(m)
	}
	if m.fs == nil {
		m.fs = afero.NewOsFs()
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.scripts == nil {
		m.scripts = NewScriptMinifier()
	}
	if m.styles == nil {
		m.styles = NewStyleMinifier()
	}
	if m.markup == nil {
		m.markup = NewMarkupMinifier()
	}
	if m.data == nil {
		m.data = NewDataMinifier()
	}
	return m
}

func (m *Minifier) MinifyCommonJSJavaScript(code string) (string, error) {
	return m.scripts.MinifyScript(Normalize(code), false)
}

func (m *Minifier) MinifyESMJavaScript(code string) (string, error) {
	return m.scripts.MinifyScript(Normalize(code), true)
}

func (m *Minifier) MinifyCSS(code string) (string, error) {
	return m.styles.MinifyStyle(code, LevelAggressive)
}

// MinifyCSSRule minifies a standalone rule fragment. It walks the style
// levels from aggressive to safe and returns the first non-empty result;
// if none is produced, code is returned with all whitespace removed.
// The result may still be empty for input made only of whitespace.
func (m *Minifier) MinifyCSSRule(code string) string {
	for _, level := range ruleLevels {
		out, err := m.styles.MinifyStyle(code, level)
		if err != nil {
			m.log.Debug("Style level rejected rule", zap.Int("level", int(level)), zap.Error(err))
			continue
		}
		if out != "" {
			return out
		}
	}

	return strings.Map(func(r rune) rune {
		if isJSSpace(r) {
			return -1
		}
		return r
	}, code)
}

var selectorSeparators = regexp.MustCompile(`[` + jsSpace + `]*([,:])[` + jsSpace + `]*`)

func (m *Minifier) MinifyCSSSelector(code string) string {
	return selectorSeparators.ReplaceAllString(Normalize(code), "$1")
}

func (m *Minifier) MinifyHTML(code string) (string, error) {
	return m.markup.MinifyMarkup(Normalize(code), true)
}

func (m *Minifier) MinifyXML(code string) (string, error) {
	return m.markup.MinifyMarkup(Normalize(code), false)
}

func (m *Minifier) MinifyJSON(code string) (string, error) {
	return m.data.MinifyData(Normalize(code))
}

func (m *Minifier) MinifyPython(code string) string {
	return CollapseBlankLines(Normalize(code))
}

func (m *Minifier) MinifyShell(code string) string {
	return CollapseBlankLines(Normalize(code))
}
