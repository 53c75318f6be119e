package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// logFile is one enumerated member of the rotated file set.
type logFile struct {
	name   string
	suffix int // numeric suffix after the extension; 0 for the current file
}

// listFiles enumerates the file set, youngest first: every regular file
// whose name starts with the configured filename and contains the
// extension marker. Ordering is by parsed numeric suffix, not by name;
// a plain lexicographic sort would age "name.log10" before "name.log2"
// once suffixes grow past one digit.
func listFiles(cfg FileConfig) ([]logFile, error) {
	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	marker := "." + cfg.Extension
	var files []logFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, cfg.Filename) || !strings.Contains(name, marker) {
			continue
		}
		files = append(files, logFile{name: name, suffix: suffixOf(name, marker)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].suffix < files[j].suffix })
	return files, nil
}

// suffixOf parses the rotation suffix following the extension marker;
// the unnumbered current file counts as 0.
func suffixOf(name, marker string) int {
	tail := name[strings.Index(name, marker)+len(marker):]
	n, err := strconv.Atoi(tail)
	if err != nil {
		return 0
	}
	return n
}

// rotateFiles evicts the oldest file when the set is at capacity, then
// shifts every remaining suffix up by one, walking oldest to youngest so
// no rename collides. The just-closed current file ends up as suffix 1.
// Any delete or rename failure aborts the rotation.
func rotateFiles(cfg FileConfig) error {
	files, err := listFiles(cfg)
	if err != nil {
		return err
	}

	if cfg.Capacity > 0 && len(files) >= cfg.Capacity {
		oldest := files[len(files)-1]
		if err := os.Remove(filepath.Join(cfg.Dir, oldest.name)); err != nil {
			return fmt.Errorf("evict %s: %w", oldest.name, err)
		}
		files = files[:len(files)-1]
	}

	for i := len(files) - 1; i >= 0; i-- {
		from := filepath.Join(cfg.Dir, files[i].name)
		to := filepath.Join(cfg.Dir, cfg.Filename+"."+cfg.Extension+strconv.Itoa(files[i].suffix+1))
		if err := os.Rename(from, to); err != nil {
			return fmt.Errorf("renumber %s: %w", files[i].name, err)
		}
	}
	return nil
}
