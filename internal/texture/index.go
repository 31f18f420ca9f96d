package texture

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// extPriority orders formats when several files share a stem.
// Lossless formats with alpha win over JPEG.
var extPriority = map[string]int{
	".png":  4,
	".tga":  3,
	".bmp":  2,
	".jpg":  1,
	".jpeg": 1,
}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir and its subdirectories for BMP/PNG/JPEG/TGA files.
// An empty dir yields an empty index.
func BuildIndex(dir string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		prio, ok := extPriority[ext]
		if !ok {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || prio > extPriority[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})
	return idx, err
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Names may carry a directory or extension ("./images/check.bmp" → "check").
func (idx *Index) ResolvePath(texName string) (string, bool) {
	texName = strings.ReplaceAll(texName, "\\", "/")
	base := filepath.Base(texName)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Names returns the indexed stems, sorted.
func (idx *Index) Names() []string {
	out := make([]string, 0, len(idx.entries))
	for k := range idx.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
