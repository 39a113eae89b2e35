package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tmelnyk/shadowstep/internal/levels/formats"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Loader loads levels from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a level loader rooted at the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped; returns levels sorted by ID for
// deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	paths, err := l.Paths()
	if err != nil {
		return nil, err
	}

	var out []Level
	for _, path := range paths {
		level, err := l.LoadFile(path)
		if err != nil {
			continue
		}
		out = append(out, level)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// Paths lists every candidate level file under the root, sorted.
func (l *Loader) Paths() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Guards:   parsed.Guards,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// Builtin returns the levels embedded in the binary, sorted by ID.
// Used when no level directory is configured.
func Builtin() ([]Level, error) {
	entries, err := builtinFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("reading builtin levels: %w", err)
	}

	var out []Level
	for _, e := range entries {
		data, err := builtinFS.ReadFile("data/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin level %s: %w", e.Name(), err)
		}
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing builtin level %s: %w", e.Name(), err)
		}
		out = append(out, Level{
			ID:     parsed.ID,
			Name:   parsed.Name,
			Rows:   parsed.Rows,
			Guards: parsed.Guards,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// Available returns levels from the given directory when set, otherwise
// the builtin set.
func Available(root string) ([]Level, error) {
	if root == "" {
		return Builtin()
	}
	return NewLoader(root).LoadAll()
}

// Playable returns the available levels that pass full validation.
// Unplayable files (bad guards, missing markers) are dropped so pickers
// never offer a level that cannot enter play state.
func Playable(root string) ([]Level, error) {
	all, err := Available(root)
	if err != nil {
		return nil, err
	}
	out := make([]Level, 0, len(all))
	for i := range all {
		if all[i].Validate() == nil {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// FindByID resolves a level ID against a directory or the builtin set.
func FindByID(root, id string) (Level, error) {
	if root != "" {
		return NewLoader(root).LoadByID(id)
	}
	all, err := Builtin()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
