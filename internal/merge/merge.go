// Package merge combines the eight core phrase lists into a single JSON
// array, preserving corpus order.
package merge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dusk-indust/phrasebook/internal/corpus"
)

// Merger reads every corpus file in manifest order from a directory and
// writes the combined array next to them.
type Merger struct {
	dir    string
	output string
	onFile func(name string)
}

// New creates a Merger for the given corpus directory. output is the merged
// filename; empty means corpus.OutputFile. onFile is called before each
// input file is read; it may be nil.
func New(dir, output string, onFile func(name string)) *Merger {
	if output == "" {
		output = corpus.OutputFile
	}
	return &Merger{
		dir:    dir,
		output: output,
		onFile: onFile,
	}
}

// Result describes a completed merge.
type Result struct {
	// Files is the number of input files merged.
	Files int

	// OutputPath is the absolute-or-relative path the artifact was written to.
	OutputPath string

	// Bytes is the size of the written artifact.
	Bytes int
}

// Merge reads each manifest file in order, validates it as a single JSON
// document, and writes the accumulated array as indented JSON. Any missing
// or malformed input aborts the run before the output path is touched, so a
// previous artifact survives every failure. Input documents pass through as
// raw JSON: object key order and number formatting are preserved, only
// indentation changes.
func (m *Merger) Merge() (*Result, error) {
	merged := make([]corpus.Document, 0, len(corpus.Categories))

	for _, name := range corpus.Manifest() {
		if m.onFile != nil {
			m.onFile(name)
		}

		data, err := os.ReadFile(filepath.Join(m.dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		var doc corpus.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		merged = append(merged, doc)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(merged); err != nil {
		return nil, fmt.Errorf("encoding merged corpus: %w", err)
	}

	outPath := filepath.Join(m.dir, m.output)
	if err := writeAtomic(outPath, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", m.output, err)
	}

	return &Result{
		Files:      len(merged),
		OutputPath: outPath,
		Bytes:      buf.Len(),
	}, nil
}

// writeAtomic writes data to a temp file in the target directory and renames
// it into place, so a failed write never truncates an existing artifact.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
