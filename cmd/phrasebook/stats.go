package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dusk-indust/phrasebook/internal/export"
)

func runStats(dir string) error {
	data, err := export.ExportCorpus(context.Background(), dir)
	if err != nil {
		return fmt.Errorf("stats failed: %w", err)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
