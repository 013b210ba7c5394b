package vocab

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSeedCSV = "Swedish,English\nhund,dog\nkatt,cat\nfågel,bird\n"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return NewStore(StoreConfig{
		ProgressPath:  filepath.Join(dir, "words_to_learn.csv"),
		SeedPath:      filepath.Join(dir, "seed.csv"),
		FrontLanguage: "Swedish",
		BackLanguage:  "English",
	}, zap.NewNop())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name     string
		progress string
		write    bool
	}{
		{name: "missing progress file"},
		{name: "empty progress file", write: true, progress: ""},
		{name: "header only", write: true, progress: "Swedish,English\n"},
		{name: "malformed csv", write: true, progress: "\"hund,dog\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			writeFile(t, store.cfg.SeedPath, testSeedCSV)
			if tt.write {
				writeFile(t, store.cfg.ProgressPath, tt.progress)
			}

			store.Load()

			assert.Equal(t, []Entry{
				{"hund", "dog"},
				{"katt", "cat"},
				{"fågel", "bird"},
			}, store.Entries())
		})
	}
}

func TestLoadReadsProgress(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.cfg.SeedPath, testSeedCSV)
	writeFile(t, store.cfg.ProgressPath, "Swedish,English\nkatt,cat\n")

	store.Load()

	assert.Equal(t, []Entry{{"katt", "cat"}}, store.Entries())
	assert.Equal(t, 3, store.SeedSize())
}

func TestLoadUsesBuiltinWhenSeedMissing(t *testing.T) {
	store := newTestStore(t)

	store.Load()

	assert.Equal(t, DefaultEntries(), store.Entries())
	assert.False(t, store.IsEmpty())
}

func TestSaveRoundTrip(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.cfg.SeedPath, testSeedCSV)
	store.Load()

	removed := Entry{Term: "katt", Translation: "cat"}
	assert.True(t, store.Remove(removed))
	require.NoError(t, store.Save())

	reloaded := NewStore(store.cfg, zap.NewNop())
	reloaded.Load()
	assert.Equal(t, []Entry{{"hund", "dog"}, {"fågel", "bird"}}, reloaded.Entries())
	assert.NotContains(t, reloaded.Entries(), removed)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.cfg.SeedPath, testSeedCSV)
	store.Load()

	require.NoError(t, store.Save())

	_, err := os.Stat(store.cfg.ProgressPath + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name        string
		entry       Entry
		wantRemoved bool
		wantLen     int
	}{
		{
			name:        "existing entry",
			entry:       Entry{Term: "hund", Translation: "dog"},
			wantRemoved: true,
			wantLen:     2,
		},
		{
			name:        "absent entry is a no-op",
			entry:       Entry{Term: "häst", Translation: "horse"},
			wantRemoved: false,
			wantLen:     3,
		},
		{
			name:        "same term different translation is a different word",
			entry:       Entry{Term: "hund", Translation: "hound"},
			wantRemoved: false,
			wantLen:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			writeFile(t, store.cfg.SeedPath, testSeedCSV)
			store.Load()

			assert.Equal(t, tt.wantRemoved, store.Remove(tt.entry))
			assert.Equal(t, tt.wantLen, store.Len())
		})
	}
}

func TestRemoveDuplicateRemovesFirstOnly(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.cfg.ProgressPath, "Swedish,English\nhund,dog\nhund,dog\n")
	store.Load()

	assert.True(t, store.Remove(Entry{Term: "hund", Translation: "dog"}))
	assert.Equal(t, []Entry{{"hund", "dog"}}, store.Entries())
}

func TestResetRestoresSeed(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.cfg.SeedPath, testSeedCSV)
	writeFile(t, store.cfg.ProgressPath, "Swedish,English\nkatt,cat\n")
	store.Load()
	require.Equal(t, 1, store.Len())

	store.Reset()

	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []Entry{{"hund", "dog"}, {"katt", "cat"}, {"fågel", "bird"}}, store.Entries())
}

func TestRandom(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.cfg.SeedPath, testSeedCSV)
	store.Load()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		e, ok := store.Random(rng)
		require.True(t, ok)
		assert.Contains(t, store.Entries(), e)
	}
}

func TestRandomEmpty(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.cfg.SeedPath, testSeedCSV)
	store.Load()
	rng := rand.New(rand.NewSource(1))
	for !store.IsEmpty() {
		e, ok := store.Random(rng)
		require.True(t, ok)
		store.Remove(e)
	}

	_, ok := store.Random(rng)
	assert.False(t, ok)
}
