// Package export builds machine-readable summaries of a corpus directory.
package export

import (
	"context"
	"time"

	"github.com/dusk-indust/phrasebook/internal/status"
)

// CorpusExport is the top-level JSON stats structure.
type CorpusExport struct {
	Dir          string           `json:"dir"`
	ScannedAt    string           `json:"scannedAt"`
	Complete     bool             `json:"complete"`
	TotalPhrases int              `json:"totalPhrases"`
	Categories   []CategoryExport `json:"categories"`
}

// CategoryExport describes one category's phrase list.
type CategoryExport struct {
	Category string `json:"category"`
	File     string `json:"file"`
	Status   string `json:"status"` // "ok", "invalid", or "missing"
	Phrases  int    `json:"phrases,omitempty"`
}

// ExportCorpus scans dir and builds a CorpusExport from the result.
func ExportCorpus(ctx context.Context, dir string) (*CorpusExport, error) {
	st, err := status.Scan(ctx, dir)
	if err != nil {
		return nil, err
	}

	exp := &CorpusExport{
		Dir:          dir,
		ScannedAt:    time.Now().UTC().Format(time.RFC3339),
		Complete:     st.Complete(),
		TotalPhrases: st.TotalPhrases(),
	}

	for _, ci := range st.Categories {
		ce := CategoryExport{
			Category: ci.Category.String(),
			File:     ci.FileName,
			Status:   "ok",
		}
		switch {
		case !ci.Present:
			ce.Status = "missing"
		case !ci.Valid:
			ce.Status = "invalid"
		case ci.Phrases >= 0:
			ce.Phrases = ci.Phrases
		}
		exp.Categories = append(exp.Categories, ce)
	}

	return exp, nil
}
