// Package levels loads initial obstacle grids.
// A level is either a YAML file with an explicit integer grid or a Tiled
// map (.tmx) whose "grid" tile layer is read cell by cell.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml data/*.tmx
var builtinFS embed.FS

const builtinDir = "data"

// DefaultID is the level used when none is selected.
const DefaultID = "default"

// GridLayer is the tile layer read from Tiled maps.
const GridLayer = "grid"

// Level is a named initial grid. Rows are top to bottom.
type Level struct {
	ID   string  `yaml:"id"`
	Name string  `yaml:"name"`
	Grid [][]int `yaml:"grid"`

	FilePath string `yaml:"-"`
}

// Size returns the row count and the widest row length.
func (l Level) Size() (rows, cols int) {
	for _, row := range l.Grid {
		cols = max(cols, len(row))
	}
	return len(l.Grid), cols
}

// Loader reads levels from a file system.
type Loader struct {
	fsys fs.FS
	dir  string
}

// NewLoader creates a loader over dir inside fsys.
func NewLoader(fsys fs.FS, dir string) *Loader {
	return &Loader{fsys: fsys, dir: dir}
}

// Builtin returns a loader over the embedded levels.
func Builtin() *Loader {
	return NewLoader(builtinFS, builtinDir)
}

// LoadAll loads every level in the directory, sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading level dir %s: %w", l.dir, err)
	}

	var result []Level
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		lvl, err := l.LoadFile(path.Join(l.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		result = append(result, lvl)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// ListIDs returns the IDs of all levels in the directory.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(all))
	for _, lvl := range all {
		ids = append(ids, lvl.ID)
	}
	return ids, nil
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

// LoadFile loads one level, choosing the format by extension.
// The path is relative to the loader's file system.
func (l *Loader) LoadFile(name string) (Level, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return loadYAML(l.fsys, name)
	case ".tmx":
		return loadTMX(l.fsys, name)
	default:
		return Level{}, fmt.Errorf("levels: unsupported level format %q", name)
	}
}

// Supported reports whether the file name has a level extension.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".tmx":
		return true
	default:
		return false
	}
}

// Default returns the embedded opening level.
func Default() Level {
	lvl, err := Builtin().LoadByID(DefaultID)
	if err != nil {
		panic(fmt.Sprintf("levels: embedded default level: %v", err))
	}
	return lvl
}

// Resolve loads ref as a file path if it exists on disk, otherwise as the
// ID of an embedded level. An empty ref yields the default level.
func Resolve(ref string) (Level, error) {
	if ref == "" {
		return Default(), nil
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		abs, err := filepath.Abs(ref)
		if err != nil {
			return Level{}, fmt.Errorf("resolving level path %s: %w", ref, err)
		}
		dir, file := filepath.Split(abs)
		return NewLoader(os.DirFS(dir), ".").LoadFile(file)
	}

	return Builtin().LoadByID(ref)
}

func loadYAML(fsys fs.FS, name string) (Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", name, err)
	}

	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("parsing level %s: %w", name, err)
	}
	if lvl.ID == "" {
		lvl.ID = stem(name)
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	lvl.FilePath = name
	return lvl, nil
}

func loadTMX(fsys fs.FS, name string) (Level, error) {
	m, err := tiled.LoadFile(name, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", name, err)
	}

	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l.Name == GridLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return Level{}, fmt.Errorf("levels: %s has no %q layer", name, GridLayer)
	}

	grid := make([][]int, m.Height)
	for y := range m.Height {
		grid[y] = make([]int, m.Width)
		for x := range m.Width {
			if i := y*m.Width + x; i < len(layer.Tiles) {
				grid[y][x] = tileKind(layer.Tiles[i])
			}
		}
	}

	id := stem(name)
	return Level{ID: id, Name: id, Grid: grid, FilePath: name}, nil
}

// tileKind reads the "kind" property of a placed tile. Tiles without the
// property are solid; empty cells are zero.
func tileKind(tile *tiled.LayerTile) int {
	if tile == nil || tile.IsNil() {
		return 0
	}
	if tile.Tileset != nil {
		if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if kind := tt.Properties.GetInt("kind"); kind != 0 {
				return kind
			}
		}
	}
	return 1
}

func stem(name string) string {
	base := path.Base(filepath.ToSlash(name))
	return strings.TrimSuffix(base, path.Ext(base))
}
