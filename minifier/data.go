package minifier

import (
	"bytes"
	stdjson "encoding/json"

	"github.com/goccy/go-json"
)

type compactJSON struct{}

// NewDataMinifier returns a DataMinifier that validates and compacts JSON,
// keeping object keys in their original order. Duplicate keys and number
// spellings are kept as written.
func NewDataMinifier() DataMinifier {
	return compactJSON{}
}

func (compactJSON) MinifyData(code string) (string, error) {
	data := []byte(code)

	// goccy accepts leading zeros, "1." and raw control characters in strings.
	if !stdjson.Valid(data) {
		var v any
		if err := stdjson.Unmarshal(data, &v); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
