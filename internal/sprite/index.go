package sprite

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// formatRank orders extensions sharing a stem. Formats carrying alpha win.
var formatRank = map[string]int{
	".bmp":  1,
	".jpg":  2,
	".jpeg": 2,
	".tga":  3,
	".webp": 4,
	".png":  5,
}

// Index maps lowercase sprite stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir and its subdirectories for decodable sprite files.
// A missing directory yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := formatRank[ext]
		if !ok {
			return nil
		}
		stem := stemOf(path)

		existing, exists := idx.entries[stem]
		if !exists || rank > formatRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a sprite name, or ("", false).
// Directory prefixes and extensions in name are ignored.
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[stemOf(name)]
	if !ok {
		// Allow direct paths to files outside the indexed directory.
		if _, err := os.Stat(name); err == nil {
			return name, true
		}
	}
	return path, ok
}

// Len returns the number of indexed sprites.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
