package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dusk-indust/phrasebook/internal/config"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Dir     string
	Output  string
	Verbose bool
	Version bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("phrasebook", flag.ContinueOnError)
	fs.StringVar(&flags.Dir, "dir", ".", "corpus directory holding the phrase list files")
	fs.StringVar(&flags.Output, "output", "", "merged artifact filename (default core-phrase-list-all.json)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "print a line per input file")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	cfg, err := config.Load(flags.Dir)
	if err != nil {
		return err
	}

	// Flags win over the config file.
	output := flags.Output
	if output == "" {
		output = cfg.Output
	}
	verbose := flags.Verbose || cfg.Verbose

	switch cmd := fs.Arg(0); cmd {
	case "", "merge":
		return runMerge(flags.Dir, output, verbose)
	case "status":
		return runStatus(flags.Dir)
	case "stats":
		return runStats(flags.Dir)
	default:
		return fmt.Errorf("unknown command %q (expected merge, status, or stats)", cmd)
	}
}
