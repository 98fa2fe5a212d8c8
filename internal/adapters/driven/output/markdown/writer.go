// Package markdown writes rendered documents as Markdown files.
package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/relnote/internal/core/domain"
	"github.com/custodia-labs/relnote/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// Extension is appended to every document name.
const Extension = ".md"

// Writer stores each document as <dir>/<name>.md, replacing any existing
// file. Files are written to a temporary name first and renamed into place.
type Writer struct {
	perm os.FileMode
}

// NewWriter creates a Markdown writer.
func NewWriter() *Writer {
	return &Writer{perm: 0644}
}

// Write stores doc under dir. An empty dir means the working directory.
func (w *Writer) Write(ctx context.Context, dir string, doc domain.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := FileName(doc.Name)
	if name == "" {
		return "", fmt.Errorf("document name: %w", domain.ErrInvalidInput)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, name+Extension)
	tmp, err := os.CreateTemp(dir, "."+name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(doc.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), w.perm); err != nil {
		return "", fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("rename %s: %w", path, err)
	}
	return path, nil
}

// FileName makes a document name safe to use as a single path element.
// Separators and characters rejected by common filesystems become '-'.
func FileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '<', '>', '"', '|', '*', 0:
			return '-'
		}
		return r
	}, name)
	if name == "." || name == ".." {
		return ""
	}
	return name
}
