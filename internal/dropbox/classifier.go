package dropbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies one entry found in the dropbox directory.
type Kind int

const (
	// KindUnsupported covers entries the pipeline reports and skips.
	KindUnsupported Kind = iota
	// KindSingleAudio is a standalone audio file.
	KindSingleAudio
	// KindCollection is a directory of ordered audio parts.
	KindCollection
)

func (k Kind) String() string {
	switch k {
	case KindSingleAudio:
		return "single"
	case KindCollection:
		return "collection"
	default:
		return "unsupported"
	}
}

// audioExtensions is the recognized audio capability set. Extend it here to
// accept more formats; classification behavior does not change otherwise.
var audioExtensions = map[string]struct{}{
	".mp3": {},
}

// IsAudioFile reports whether name carries a recognized audio extension.
// The check is case-insensitive and looks at the name only, not the content.
func IsAudioFile(name string) bool {
	_, ok := audioExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Item is one classified dropbox entry.
type Item struct {
	Path string
	Name string
	Kind Kind
}

// Classify inspects one dropbox entry and decides how the pipeline should
// treat it. Directories are always collections; files are single audio items
// when their extension is recognized and unsupported otherwise.
func Classify(path string) (Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Item{}, fmt.Errorf("classify %s: %w", path, err)
	}

	item := Item{Path: path, Name: filepath.Base(path)}
	switch {
	case info.IsDir():
		item.Kind = KindCollection
	case IsAudioFile(item.Name):
		item.Kind = KindSingleAudio
	default:
		item.Kind = KindUnsupported
	}
	return item, nil
}

// ListParts returns the recognized audio files directly inside dir, sorted
// by name. That order is the authoritative part order for a collection and
// is fixed at the moment of listing.
func ListParts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list parts in %s: %w", dir, err)
	}

	var parts []string
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		parts = append(parts, filepath.Join(dir, entry.Name()))
	}
	// os.ReadDir already sorts entries by name.
	return parts, nil
}

// List enumerates the dropbox directory once and classifies every entry.
// Entries added after this call are not seen until the next run.
func List(dropboxDir string) ([]Item, error) {
	entries, err := os.ReadDir(dropboxDir)
	if err != nil {
		return nil, fmt.Errorf("list dropbox %s: %w", dropboxDir, err)
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		item, err := Classify(filepath.Join(dropboxDir, entry.Name()))
		if err != nil {
			// Entry vanished between listing and stat; the processors
			// re-check existence anyway.
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
