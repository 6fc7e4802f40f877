// Package entries loads the launcher's instance list from the instances
// directory. Each entry directory may carry an instance.toml with version
// metadata; a missing or malformed file leaves the entry listed with empty
// metadata rather than failing the whole load.
package entries

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MetadataFileName is the per-entry metadata file.
const MetadataFileName = "instance.toml"

// Entry is one launchable instance.
type Entry struct {
	Name string
	Path string
	Metadata
}

// Metadata mirrors instance.toml.
type Metadata struct {
	Version string `toml:"version"`
	Loader  string `toml:"loader"`
	Icon    string `toml:"icon"`
}

var (
	cacheMu sync.Mutex
	cache   = map[string][]Entry{}
)

// List returns the entries under instancesDir sorted by name using a
// case-tolerant collation. Results are cached per directory; refresh forces
// a rescan (startup passes false). A missing instances directory yields an
// empty list: the first run simply has no entries yet.
func List(instancesDir string, refresh bool) ([]Entry, error) {
	if instancesDir == "" {
		return nil, errors.New("entries: no instances directory")
	}

	cacheMu.Lock()
	if !refresh {
		if cached, ok := cache[instancesDir]; ok {
			cacheMu.Unlock()
			return cached, nil
		}
	}
	cacheMu.Unlock()

	loaded, err := scan(instancesDir)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[instancesDir] = loaded
	cacheMu.Unlock()
	return loaded, nil
}

func scan(instancesDir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(instancesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read instances directory: %w", err)
	}

	var result []Entry
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		entry := Entry{
			Name: de.Name(),
			Path: filepath.Join(instancesDir, de.Name()),
		}
		entry.Metadata = readMetadata(entry.Path)
		result = append(result, entry)
	}

	coll := collate.New(language.Und, collate.Loose)
	sort.SliceStable(result, func(i, j int) bool {
		return coll.CompareString(result[i].Name, result[j].Name) < 0
	})
	return result, nil
}

func readMetadata(entryDir string) Metadata {
	var meta Metadata
	data, err := os.ReadFile(filepath.Join(entryDir, MetadataFileName))
	if err != nil {
		return meta
	}
	// Malformed metadata is tolerated; the entry stays usable.
	_ = toml.Unmarshal(data, &meta)
	return meta
}
