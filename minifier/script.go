package minifier

import (
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// ScriptError carries the messages esbuild reported for a failed transform.
type ScriptError struct {
	Messages []api.Message
}

func (e *ScriptError) Error() string {
	parts := make([]string, 0, len(e.Messages))
	for _, msg := range e.Messages {
		if msg.Location != nil {
			parts = append(parts, fmt.Sprintf("%s:%d:%d: %s", msg.Location.File, msg.Location.Line, msg.Location.Column, msg.Text))
			continue
		}
		parts = append(parts, msg.Text)
	}
	return strings.Join(parts, "; ")
}

func (e *ScriptError) EngineError() bool { return true }

type esbuildScripts struct {
	target api.Target
}

// NewScriptMinifier returns a ScriptMinifier backed by esbuild.
func NewScriptMinifier() ScriptMinifier {
	return &esbuildScripts{target: api.ESNext}
}

func (e *esbuildScripts) MinifyScript(code string, module bool) (string, error) {
	format := api.FormatDefault
	if module {
		format = api.FormatESModule
	}

	result := api.Transform(code, api.TransformOptions{
		Loader:            api.LoaderJS,
		Format:            format,
		Target:            e.target,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LegalComments:     api.LegalCommentsNone,
	})
	if len(result.Errors) > 0 {
		return "", &ScriptError{Messages: result.Errors}
	}

	return strings.TrimSuffix(string(result.Code), "\n"), nil
}
