package main

import (
	"context"
	"fmt"

	"github.com/dusk-indust/phrasebook/internal/status"
)

func runStatus(dir string) error {
	st, err := status.Scan(context.Background(), dir)
	if err != nil {
		return err
	}

	fmt.Printf("Corpus: %s\n\n", st.Dir)
	printCategoryTable(st)
	return nil
}

func printCategoryTable(st *status.CorpusStatus) {
	for i, ci := range st.Categories {
		marker := "  "
		if i == st.NextMissing {
			marker = "->"
		}

		label := "ok"
		switch {
		case !ci.Present:
			label = "missing"
		case !ci.Valid:
			label = "invalid"
		case ci.Phrases >= 0:
			label = fmt.Sprintf("%d phrases", ci.Phrases)
		}

		fmt.Printf("  %s %-9s %-36s [%s]\n", marker, ci.Category, ci.FileName, label)
	}

	if st.Complete() {
		fmt.Printf("\n  Corpus complete (%d phrases). Run 'phrasebook merge'.\n", st.TotalPhrases())
	} else {
		fmt.Printf("\n  Fix %s before merging.\n", st.Categories[st.NextMissing].FileName)
	}
}
