package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errEmptyFile = errors.New("empty vocabulary file")

var (
	termColumnCandidates        = []string{"term", "word", "swedish", "front"}
	translationColumnCandidates = []string{"translation", "meaning", "english", "back"}
)

// readEntriesFile parses a two-column CSV of word pairs. The header row is
// recognized by column-name candidates (including the configured language
// names); headerless files are read positionally.
func readEntriesFile(path, frontLanguage, backLanguage string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, errEmptyFile
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = cleanCell(cell)
	}
	termCol, transCol, skipHeader := resolvePairColumns(header, frontLanguage, backLanguage)
	start := 0
	if skipHeader {
		start = 1
	}

	entries := make([]Entry, 0, len(rows)-start)
	for _, row := range rows[start:] {
		if termCol >= len(row) || transCol >= len(row) {
			continue
		}
		e, ok := newEntry(cleanCell(row[termCol]), cleanCell(row[transCol]))
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, errEmptyFile
	}
	return entries, nil
}

// writeEntriesFile persists the entries atomically: the full content is
// written to a temp file which then replaces the target.
func writeEntriesFile(path string, header []string, entries []Entry) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range entries {
		if err := writer.Write([]string{e.Term, e.Translation}); err != nil {
			f.Close()
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", filepath.Base(tmp), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func resolvePairColumns(header []string, frontLanguage, backLanguage string) (int, int, bool) {
	termCol := findColumn(header, append([]string{frontLanguage}, termColumnCandidates...))
	transCol := findColumn(header, append([]string{backLanguage}, translationColumnCandidates...))
	if termCol >= 0 && transCol >= 0 && termCol != transCol {
		return termCol, transCol, true
	}
	return 0, 1, false
}

func findColumn(header []string, candidates []string) int {
	for i, col := range header {
		for _, cand := range candidates {
			if cand != "" && strings.EqualFold(col, cand) {
				return i
			}
		}
	}
	return -1
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "\ufeff")
	return v
}
