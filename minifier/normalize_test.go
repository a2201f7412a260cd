package minifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trims", "  \n\tconst a = 1;\n\n", "const a = 1;"},
		{"crlf", "a\r\nb\r\n", "a\nb"},
		{"lone cr", "a\rb\r\rc", "a\nb\n\nc"},
		{"mixed endings", "a\r\n\rb", "a\n\nb"},
		{"shebang", "#!/usr/bin/env node\n\n  run();  \n", "#!/usr/bin/env node\nrun();"},
		{"shebang crlf", "#!/bin/sh\r\n\r\necho hi\r\n", "#!/bin/sh\necho hi"},
		{"shebang only", "#!/bin/sh", "#!/bin/sh\n"},
		{"shebang keeps trailing spaces", "#!/bin/sh -e  \necho", "#!/bin/sh -e  \necho"},
		{"indented shebang", "  #!/bin/sh\necho", "#!/bin/sh\necho"},
		{"byte order mark", "\uFEFF{\"a\":1}\n", "{\"a\":1}"},
		{"blank lines before shebang", "\n\n#!/bin/sh\n\n echo", "#!/bin/sh\necho"},
		{"shebang exposed without body", "  #!/bin/sh  ", "#!/bin/sh\n"},
		{"ecmascript spaces", "\u3000\u2028\v\u00a0x\u205f", "x"},
		{"next line is not a space", "\u0085x\u0085", "\u0085x\u0085"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalize_Properties(t *testing.T) {
	inputs := []string{
		"",
		"\r\n",
		"#!/bin/sh",
		"#!/bin/sh\n",
		"#!/bin/sh\r\n\r\n  x \r",
		"  a\r\rb  ",
		"\n\n#!/not/first\n",
		"#!python3\n\n\n\nimport os\n\n\nprint(os.name)\n",
	}

	t.Run("Should be idempotent", func(t *testing.T) {
		for _, in := range inputs {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once), "input %q", in)
		}
	})

	t.Run("Should never leave a carriage return", func(t *testing.T) {
		for _, in := range inputs {
			assert.NotContains(t, Normalize(in), "\r", "input %q", in)
		}
	})

	t.Run("Should reproduce the shebang line followed by one line feed", func(t *testing.T) {
		in := "#!/usr/bin/env bash -x\n\n\n  set -e\n"
		out := Normalize(in)
		assert.True(t, strings.HasPrefix(out, "#!/usr/bin/env bash -x\nset -e"))
	})
}

func TestCollapseBlankLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"no blank lines", "a\nb", "a\nb"},
		{"pair", "a\n\nb", "a\nb"},
		{"odd run", "a\n\n\nb", "a\nb"},
		{"long run", "a" + strings.Repeat("\n", 9) + "b", "a\nb"},
		{"several runs", "a\n\nb\n\n\n\nc\n", "a\nb\nc\n"},
		{"inside string literal", "s = \"\"\"x\n\ny\"\"\"", "s = \"\"\"x\ny\"\"\""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := CollapseBlankLines(tc.in)
			assert.Equal(t, tc.want, out)
			assert.Equal(t, out, CollapseBlankLines(out))
		})
	}
}

func TestShellScenario(t *testing.T) {
	in := "#!/bin/sh\n\n\n echo hi \n\n"
	normalized := Normalize(in)
	assert.Equal(t, "#!/bin/sh\necho hi", normalized)
	assert.Equal(t, "#!/bin/sh\necho hi", CollapseBlankLines(normalized))
}
