// SPDX-License-Identifier: MIT

package nodelink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphcore/core"
)

// documentPerm is the mode of saved documents.
const documentPerm = 0o644

// Format names a document encoding.
type Format string

const (
	// FormatJSON is the node-link JSON document (.json).
	FormatJSON Format = "json"
	// FormatYAML is the same record encoded as YAML (.yaml, .yml).
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from path's extension, case-insensitively.
// Returns ErrUnsupportedFormat for any other extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Encode writes g to w in format f.
func Encode(g *core.Graph, w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(g, w)
	case FormatYAML:
		return WriteYAML(g, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Decode reads a graph in format f from r.
func Decode(r io.Reader, f Format) (*core.Graph, error) {
	switch f {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Save writes g to the file at path, choosing the codec by extension.
// The document is written to a temporary file in the same directory and
// renamed over path, so a failed write leaves the previous file intact.
func Save(path string, g *core.Graph) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	return writeAtomic(path, func(w io.Writer) error { return Encode(g, w, f) })
}

// writeAtomic runs write against a temp file next to path and renames it
// into place only when write and Close succeed. The temp file is removed
// on every failure.
func writeAtomic(path string, write func(io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if err = write(tmp); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Chmod(tmpName, documentPerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}

// Load reads the graph stored at path, choosing the codec by extension.
func Load(path string) (*core.Graph, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer in.Close()

	g, err := Decode(in, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return g, nil
}
