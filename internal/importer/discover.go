package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo describes a discovered statement CSV.
type FileInfo struct {
	Name string // file name, used as the transaction source identifier
	Path string
	Size int64
}

// manifestFile lists statement files explicitly, for directories that
// also hold unrelated CSVs.
const manifestFile = "files.json"

// Discover returns the statement CSVs in dir, sorted by file name.
// A files.json manifest (a JSON array of file names) takes precedence;
// without one, the directory is scanned for *.csv entries.
func Discover(dir string) ([]FileInfo, error) {
	files, err := fromManifest(dir)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files, err = scan(dir)
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func fromManifest(dir string) ([]FileInfo, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	files := make([]FileInfo, 0, len(names))
	for _, name := range names {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, name)
		}
		// A listed file that is missing stays in the result; the read
		// step reports it and moves on, so one stale manifest entry
		// cannot sink the other statements.
		entry := FileInfo{Name: filepath.Base(name), Path: path}
		if info, err := os.Stat(path); err == nil {
			entry.Size = info.Size()
		}
		files = append(files, entry)
	}
	return files, nil
}

func scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statements dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}
