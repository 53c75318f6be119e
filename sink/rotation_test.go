package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestListFiles_NumericSuffixOrder(t *testing.T) {
	dir := t.TempDir()
	cfg := FileConfig{Dir: dir, Filename: "app", Extension: "log"}

	// Deliberately includes two-digit suffixes: a lexicographic sort
	// would place app.log10 before app.log2.
	for _, name := range []string{"app.log10", "app.log", "app.log2", "app.log1", "app.log11"} {
		writeFile(t, dir, name, "")
	}

	files, err := listFiles(cfg)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.name)
	}
	assert.Equal(t, []string{"app.log", "app.log1", "app.log2", "app.log10", "app.log11"}, names)
}

func TestListFiles_FiltersForeignNames(t *testing.T) {
	dir := t.TempDir()
	cfg := FileConfig{Dir: dir, Filename: "app", Extension: "log"}

	writeFile(t, dir, "app.log", "")
	writeFile(t, dir, "app.log1", "")
	writeFile(t, dir, "other.log", "")
	writeFile(t, dir, "app.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "app.logdir"), 0o755))

	files, err := listFiles(cfg)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestListFiles_MissingDir(t *testing.T) {
	files, err := listFiles(FileConfig{Dir: "/nonexistent/rotolog", Filename: "app", Extension: "log"})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRotateFiles_Renumbers(t *testing.T) {
	dir := t.TempDir()
	cfg := FileConfig{Dir: dir, Filename: "app", Extension: "log", Capacity: 10}

	writeFile(t, dir, "app.log", "current")
	writeFile(t, dir, "app.log1", "older")
	writeFile(t, dir, "app.log2", "oldest")

	require.NoError(t, rotateFiles(cfg))

	// Every suffix shifted by one; no current file until the next flush.
	assert.NoFileExists(t, filepath.Join(dir, "app.log"))
	assert.Equal(t, "current", readFile(t, dir, "app.log1"))
	assert.Equal(t, "older", readFile(t, dir, "app.log2"))
	assert.Equal(t, "oldest", readFile(t, dir, "app.log3"))
}

func TestRotateFiles_EvictsOldestAtCapacity(t *testing.T) {
	dir := t.TempDir()
	cfg := FileConfig{Dir: dir, Filename: "app", Extension: "log", Capacity: 3}

	writeFile(t, dir, "app.log", "current")
	writeFile(t, dir, "app.log1", "older")
	writeFile(t, dir, "app.log2", "oldest")

	require.NoError(t, rotateFiles(cfg))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "eviction keeps the set under capacity")
	assert.Equal(t, "current", readFile(t, dir, "app.log1"))
	assert.Equal(t, "older", readFile(t, dir, "app.log2"))
}

func TestRotateFiles_SettlesAtCapacityAcrossRollovers(t *testing.T) {
	dir := t.TempDir()
	const capacity = 4
	cfg := FileConfig{Dir: dir, Filename: "app", Extension: "log", Capacity: capacity}

	// Simulate rollovers: each one closes a full current file and is
	// followed by a lazily created new current file.
	for i := 0; i < capacity+3; i++ {
		writeFile(t, dir, "app.log", "batch")
		require.NoError(t, rotateFiles(cfg))
	}

	files, err := listFiles(cfg)
	require.NoError(t, err)
	require.Len(t, files, capacity-1, "capacity-1 rotated files plus the lazy current slot")
	assert.Equal(t, 1, files[0].suffix, "the youngest rotated file always carries suffix 1")
}
