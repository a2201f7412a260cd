package minifier

// Level is a stylesheet optimization level, from LevelSafe to LevelAggressive.
type Level int

const (
	LevelSafe Level = iota
	LevelBasic
	LevelAggressive
)

// ruleLevels is the order MinifyCSSRule tries the style engine in.
var ruleLevels = []Level{LevelAggressive, LevelBasic, LevelSafe}

// ScriptMinifier minifies JavaScript. When module is true the code is treated
// as an ES module, otherwise as a classic script.
type ScriptMinifier interface {
	MinifyScript(code string, module bool) (string, error)
}

// StyleMinifier minifies CSS at the given optimization level.
// An empty result means the engine could not treat code as a stylesheet at that level.
type StyleMinifier interface {
	MinifyStyle(code string, level Level) (string, error)
}

// MarkupMinifier minifies HTML (html == true) or generic XML.
// HTML mode never collapses empty elements into self-closing tags.
type MarkupMinifier interface {
	MinifyMarkup(code string, html bool) (string, error)
}

// DataMinifier minifies JSON. Invalid input is a parse error.
type DataMinifier interface {
	MinifyData(code string) (string, error)
}
