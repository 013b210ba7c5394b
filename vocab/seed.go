package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var defaultEntries = []Entry{
	{"hej", "hello"},
	{"tack", "thank you"},
	{"ja", "yes"},
	{"nej", "no"},
	{"hund", "dog"},
	{"katt", "cat"},
	{"fågel", "bird"},
	{"fisk", "fish"},
	{"vatten", "water"},
	{"mjölk", "milk"},
	{"bröd", "bread"},
	{"äpple", "apple"},
	{"mat", "food"},
	{"hus", "house"},
	{"dörr", "door"},
	{"fönster", "window"},
	{"bord", "table"},
	{"stol", "chair"},
	{"bok", "book"},
	{"bil", "car"},
	{"vän", "friend"},
	{"kärlek", "love"},
	{"arbete", "work"},
	{"skola", "school"},
	{"pengar", "money"},
	{"tid", "time"},
	{"dag", "day"},
	{"natt", "night"},
	{"sol", "sun"},
	{"måne", "moon"},
	{"god morgon", "good morning"},
	{"god natt", "good night"},
}

// DefaultEntries returns the built-in Swedish seed vocabulary.
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// EnsureSeedFile writes the built-in vocabulary to the given path when no
// seed file exists yet. This gives users a starting point for editing the
// word list outside of the binary.
func EnsureSeedFile(path, frontLanguage, backLanguage string, logger *zap.Logger) {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return
	}
	clean = filepath.Clean(clean)
	if _, err := os.Stat(clean); err == nil {
		return
	} else if !errors.Is(err, os.ErrNotExist) {
		logger.Warn("check seed file", zap.String("path", clean), zap.Error(err))
		return
	}
	dir := filepath.Dir(clean)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Warn("create seed dir", zap.String("dir", dir), zap.Error(err))
			return
		}
	}
	if err := writeEntriesFile(clean, []string{frontLanguage, backLanguage}, defaultEntries); err != nil {
		logger.Warn("write seed file", zap.String("path", clean), zap.Error(err))
	}
}
