package minifier

import (
	"regexp"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"github.com/tdewolff/minify/v2/xml"
)

const (
	mimeHTML = "text/html"
	mimeXML  = "text/xml"
)

type tdewolffMarkup struct {
	once sync.Once
	m    *minify.M
}

// NewMarkupMinifier returns a MarkupMinifier backed by tdewolff/minify.
// Inline styles, scripts and JSON blocks inside HTML are minified too.
func NewMarkupMinifier() MarkupMinifier {
	return &tdewolffMarkup{}
}

func (x *tdewolffMarkup) init() {
	x.m = minify.New()
	x.m.Add(mimeHTML, &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
	})
	x.m.Add(mimeXML, &xml.Minifier{})
	x.m.AddFunc(mimeStylesheet, css.Minify)
	x.m.AddFuncRegexp(regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$"), js.Minify)
	x.m.AddFuncRegexp(regexp.MustCompile("[/+]json$"), json.Minify)
}

func (x *tdewolffMarkup) MinifyMarkup(code string, asHTML bool) (string, error) {
	x.once.Do(x.init)

	if asHTML {
		return x.m.String(mimeHTML, code)
	}
	return x.m.String(mimeXML, code)
}
