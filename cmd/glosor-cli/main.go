package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"moaburke/glosor/internal/app"
	"moaburke/glosor/vocab"
)

type cliOptions struct {
	configPath string
	list       bool
	stats      bool
	reset      bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("glosor-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("glosor-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.BoolVar(&opts.list, "list", false, "Print the words still to learn")
	flag.BoolVar(&opts.stats, "stats", false, "Print remaining/seed word counts")
	flag.BoolVar(&opts.reset, "reset", false, "Restore the full seed list, discarding progress")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-list | -stats | -reset] [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	if !opts.list && !opts.stats && !opts.reset {
		flag.Usage()
		return opts, errors.New("nothing to do: pass -list, -stats or -reset")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := app.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	vocab.EnsureSeedFile(cfg.SeedFile, cfg.FrontLanguage, cfg.BackLanguage, logger)

	store := vocab.NewStore(vocab.StoreConfig{
		ProgressPath:  cfg.ProgressFile,
		SeedPath:      cfg.SeedFile,
		FrontLanguage: cfg.FrontLanguage,
		BackLanguage:  cfg.BackLanguage,
	}, logger)
	store.Load()

	if opts.reset {
		store.Reset()
		if err := store.Save(); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		fmt.Printf("progress reset: %d words to learn\n", store.Len())
	}
	if opts.stats {
		fmt.Printf("%d of %d words left to learn\n", store.Len(), store.SeedSize())
	}
	if opts.list {
		printEntries(store.Entries())
	}
	return nil
}

func printEntries(entries []vocab.Entry) {
	collator := collate.New(language.Swedish)
	sort.Slice(entries, func(i, j int) bool {
		return collator.CompareString(entries[i].Term, entries[j].Term) < 0
	})
	for _, e := range entries {
		fmt.Printf("%s\t%s\n", e.Term, e.Translation)
	}
}
