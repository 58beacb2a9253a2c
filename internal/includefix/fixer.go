package includefix

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

type Status string

const (
	StatusFixed    Status = "fixed"
	StatusNotFound Status = "not_found"
)

// FileResult is the outcome for one fix map entry.
type FileResult struct {
	Path    string
	Status  Status
	Changed bool
}

// Summary lists per-file outcomes in fix map order.
type Summary struct {
	Files []FileResult
}

func (s Summary) Count(status Status) int {
	n := 0
	for _, f := range s.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Fixer applies a FixMap to files resolved against Root.
type Fixer struct {
	root string
	fm   FixMap
	out  io.Writer
}

func NewFixer(root string, fm FixMap, out io.Writer) *Fixer {
	if root == "" {
		root = "."
	}
	if fm == nil {
		fm = DefaultFixMap()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Fixer{root: root, fm: fm, out: out}
}

// Run processes every entry in order. A missing file is reported and skipped;
// a read or write failure stops the run.
func (f *Fixer) Run() (Summary, error) {
	var summary Summary
	entries, err := f.fm.compile()
	if err != nil {
		return summary, err
	}
	for _, entry := range entries {
		p := filepath.Join(f.root, filepath.FromSlash(entry.path))
		info, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(f.out, "File not found: %s\n", entry.path)
			summary.Files = append(summary.Files, FileResult{Path: entry.path, Status: StatusNotFound})
			continue
		}
		if err != nil {
			return summary, fmt.Errorf("includefix: stat %s: %w", entry.path, err)
		}
		changed, err := fixFile(p, info.Mode().Perm(), entry)
		if err != nil {
			return summary, err
		}
		fmt.Fprintf(f.out, "Fixed: %s\n", entry.path)
		log.Debug().Msgf("includefix.Fixer.Run path=%q changed=%t", entry.path, changed)
		summary.Files = append(summary.Files, FileResult{Path: entry.path, Status: StatusFixed, Changed: changed})
	}
	fmt.Fprintln(f.out, "Include paths updated")
	return summary, nil
}

func fixFile(path string, perm fs.FileMode, entry compiledEntry) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("includefix: read %s: %w", entry.path, err)
	}
	before := string(data)
	after := entry.apply(before)
	if err := os.WriteFile(path, []byte(after), perm); err != nil {
		return false, fmt.Errorf("includefix: write %s: %w", entry.path, err)
	}
	return after != before, nil
}
