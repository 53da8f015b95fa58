package main

import (
	"fmt"
	"path/filepath"

	"github.com/dusk-indust/phrasebook/internal/merge"
)

func runMerge(dir, output string, verbose bool) error {
	var onFile func(name string)
	if verbose {
		onFile = func(name string) {
			fmt.Printf("  reading %s\n", name)
		}
	}

	res, err := merge.New(dir, output, onFile).Merge()
	if err != nil {
		return err
	}

	fmt.Printf("Merged %d JSON files into %s\n", res.Files, filepath.Base(res.OutputPath))
	return nil
}
