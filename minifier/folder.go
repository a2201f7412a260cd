package minifier

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Kind is the minification routine selected for a file.
type Kind int

const (
	KindNone Kind = iota
	KindCommonJS
	KindESM
	KindCSS
	KindHTML
	KindXML
	KindJSON
	KindPython
	KindShell
)

var kindNames = map[Kind]string{
	KindNone:     "none",
	KindCommonJS: "commonjs",
	KindESM:      "esm",
	KindCSS:      "css",
	KindHTML:     "html",
	KindXML:      "xml",
	KindJSON:     "json",
	KindPython:   "python",
	KindShell:    "shell",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var kindsByExt = map[string]Kind{
	"cjs":  KindCommonJS,
	"js":   KindCommonJS,
	"mjs":  KindESM,
	"css":  KindCSS,
	"htm":  KindHTML,
	"html": KindHTML,
	"svg":  KindXML,
	"xml":  KindXML,
	"json": KindJSON,
	"py":   KindPython,
	"sh":   KindShell,
}

// KindForPath selects the routine by the path's extension, case-insensitively.
func KindForPath(path string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return kindsByExt[ext]
}

// Minify applies the routine for kind to code.
func (m *Minifier) Minify(kind Kind, code string) (string, error) {
	switch kind {
	case KindCommonJS:
		return m.MinifyCommonJSJavaScript(code)
	case KindESM:
		return m.MinifyESMJavaScript(code)
	case KindCSS:
		return m.MinifyCSS(code)
	case KindHTML:
		return m.MinifyHTML(code)
	case KindXML:
		return m.MinifyXML(code)
	case KindJSON:
		return m.MinifyJSON(code)
	case KindPython:
		return m.MinifyPython(code), nil
	case KindShell:
		return m.MinifyShell(code), nil
	default:
		return code, nil
	}
}

// Stats summarises a MinifyFolder run.
type Stats struct {
	Processed   int
	Skipped     int
	BytesBefore int64
	BytesAfter  int64
}

// MinifyFolder minifies every recognised file below root in place, one file
// at a time in lexical walk order. The first error aborts the walk; files
// already processed stay rewritten. Walk and I/O errors are returned as is;
// a root that is not a directory fails with ENOTDIR.
func (m *Minifier) MinifyFolder(ctx context.Context, root string) (Stats, error) {
	var stats Stats

	info, err := m.fs.Stat(root)
	if err != nil {
		return stats, err
	}
	if !info.IsDir() {
		return stats, &fs.PathError{Op: "readdir", Path: root, Err: syscall.ENOTDIR}
	}

	err = afero.Walk(m.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		excluded, err := m.excluded(root, path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if excluded {
				return filepath.SkipDir
			}
			return nil
		}

		kind := KindForPath(path)
		if excluded || kind == KindNone {
			stats.Skipped++
			return nil
		}

		before, after, err := m.minifyFile(path, info, kind)
		if err != nil {
			return err
		}
		stats.Processed++
		stats.BytesBefore += before
		stats.BytesAfter += after
		return nil
	})

	return stats, err
}

func (m *Minifier) minifyFile(path string, info os.FileInfo, kind Kind) (int64, int64, error) {
	m.log.Info("Minify", zap.String("file", path), zap.Stringer("kind", kind))

	input, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return 0, 0, err
	}

	output, err := m.Minify(kind, string(input))
	if err != nil {
		return 0, 0, err
	}

	if m.dryRun {
		m.log.Debug("Dry run: skipping write", zap.String("file", path))
	} else if err := afero.WriteFile(m.fs, path, []byte(output), info.Mode().Perm()); err != nil {
		return 0, 0, err
	}

	return int64(len(input)), int64(len(output)), nil
}

// excluded matches path, relative to root and slash separated, against the
// configured patterns. The root itself is never excluded.
func (m *Minifier) excluded(root, path string) (bool, error) {
	if len(m.exclude) == 0 {
		return false, nil
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false, err
	}
	if rel == "." {
		return false, nil
	}

	rel = filepath.ToSlash(rel)
	for _, pattern := range m.exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
