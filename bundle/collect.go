package bundle

import (
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"
)

// FileEntry is one file of the publish payload. Exactly one of Content and
// ContentBase64 is set: Content carries UTF-8 text, ContentBase64 carries
// standard unwrapped base64. Path is always forward-slash separated and
// relative to the publish root.
type FileEntry struct {
	Path          string `json:"path"`
	Content       string `json:"content,omitempty"`
	ContentBase64 string `json:"contentBase64,omitempty"`
}

// PublishPayload is the request body of the publish endpoint.
type PublishPayload struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Files       []FileEntry `json:"files"`
}

// Collect walks the publish root and returns one entry per regular file,
// ordered lexicographically by path so the payload is identical across runs
// and platforms. With preferText set, files whose bytes are valid UTF-8 are
// sent as text; everything else falls back to base64.
//
// An unreadable file fails the whole collection. A bundle missing some of
// its files is worse than no upload at all.
func Collect(root string, preferText bool) ([]FileEntry, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", root, err)
	}

	sort.Strings(paths)

	entries := make([]FileEntry, 0, len(paths))
	for _, path := range paths {
		relative, err := filepath.Rel(root, path)
		if err != nil {
			return nil, fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}

		entry := FileEntry{Path: filepath.ToSlash(relative)}

		if preferText && utf8.Valid(raw) {
			entry.Content = string(raw)
		} else {
			entry.ContentBase64 = base64.StdEncoding.EncodeToString(raw)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
