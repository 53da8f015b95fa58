// Package status inspects a corpus directory and reports the state of each
// per-category phrase list.
package status

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dusk-indust/phrasebook/internal/corpus"
	"golang.org/x/sync/errgroup"
)

// CategoryInfo describes the on-disk state of one category's phrase list.
type CategoryInfo struct {
	Category corpus.Category
	FileName string
	Present  bool
	Valid    bool // file exists and holds exactly one JSON document

	// Phrases is the element count when the document is a JSON array,
	// -1 when it is some other JSON value. The corpus is permissive about
	// document shape, so -1 is informational, not an error.
	Phrases int
}

// CorpusStatus holds the scan result for one corpus directory.
type CorpusStatus struct {
	Dir        string
	Categories []CategoryInfo

	// NextMissing is the first category whose file is absent or malformed,
	// -1 when the whole corpus is mergeable.
	NextMissing int
}

// Complete reports whether every category file is present and valid.
func (s *CorpusStatus) Complete() bool {
	return s.NextMissing == -1
}

// TotalPhrases sums the phrase counts of every array-shaped document.
func (s *CorpusStatus) TotalPhrases() int {
	total := 0
	for _, ci := range s.Categories {
		if ci.Phrases > 0 {
			total += ci.Phrases
		}
	}
	return total
}

// Scan inspects every manifest file in dir concurrently and returns results
// in corpus order. Missing or malformed files are reported in the result,
// not as errors; the returned error is non-nil only when the scan itself is
// interrupted (context cancellation).
func Scan(ctx context.Context, dir string) (*CorpusStatus, error) {
	infos := make([]CategoryInfo, len(corpus.Categories))
	g, gctx := errgroup.WithContext(ctx)

	for i, c := range corpus.Categories {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			infos[i] = scanCategory(dir, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st := &CorpusStatus{
		Dir:         dir,
		Categories:  infos,
		NextMissing: -1,
	}
	for i, ci := range infos {
		if !ci.Present || !ci.Valid {
			st.NextMissing = i
			break
		}
	}
	return st, nil
}

func scanCategory(dir string, c corpus.Category) CategoryInfo {
	info := CategoryInfo{
		Category: c,
		FileName: c.FileName(),
		Phrases:  -1,
	}

	data, err := os.ReadFile(filepath.Join(dir, c.FileName()))
	if err != nil {
		return info
	}
	info.Present = true

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return info
	}
	info.Valid = true

	// Phrase counts only make sense for array-shaped documents; anything
	// else stays at -1.
	if arr, ok := v.([]any); ok {
		info.Phrases = len(arr)
	}
	return info
}
