// Package report stores the artifacts of a suite run and builds its summary.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// NewRunID returns a fresh identifier for a run's artifact directory.
func NewRunID() string {
	return uuid.New().String()
}

// Dir is a journey.Sink writing numbered files into one run directory, so a listing shows them
// in the order they were produced. A nil *Dir discards everything.
type Dir struct {
	path string

	mu    sync.Mutex
	seq   int
	files []string
}

// NewDir creates root/runID and returns a sink writing into it.
func NewDir(root, runID string) (*Dir, error) {
	if runID == "" {
		return nil, fmt.Errorf("create run dir in %s: empty run id", root)
	}
	path := filepath.Join(root, runID)
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the run directory, empty for a nil Dir.
func (d *Dir) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

// Files lists the written files in write order.
func (d *Dir) Files() []string {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.files...)
}

// Text writes body as NN-name.txt.
func (d *Dir) Text(name, body string) error {
	_, err := d.Save(name, "txt", []byte(body))
	return err
}

// Image writes a png screenshot as NN-name.png.
func (d *Dir) Image(name string, png []byte) error {
	_, err := d.Save(name, "png", png)
	return err
}

// Save writes data as NN-name.ext and returns the file path.
func (d *Dir) Save(name, ext string, data []byte) (string, error) {
	if d == nil {
		return "", nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	path := filepath.Join(d.path, fmt.Sprintf("%02d-%s.%s", d.seq, fileName(name), ext))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	d.files = append(d.files, path)
	return path, nil
}

// fileName keeps letters, digits, dashes and underscores, everything else becomes a dash.
func fileName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return ' '
	}, name)
	if res := strings.Join(strings.Fields(mapped), "-"); res != "" {
		return res
	}
	return "artifact"
}

// Nop discards every artifact.
type Nop struct{}

// Text does nothing.
func (Nop) Text(string, string) error { return nil }

// Image does nothing.
func (Nop) Image(string, []byte) error { return nil }
