package levels_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/sky-climber/internal/levels"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="60" tileheight="20" infinite="0" nextlayerid="3" nextobjectid="1">
 <tileset firstgid="1" name="t" tilewidth="60" tileheight="20" tilecount="2" columns="0">
  <tile id="1">
   <properties>
    <property name="kind" type="int" value="2"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="decor" width="3" height="2">
  <data encoding="csv">
1,1,1,
1,1,1
</data>
 </layer>
 <layer id="2" name="grid" width="3" height="2">
  <data encoding="csv">
1,0,2,
0,1,0
</data>
 </layer>
</map>
`

func TestDefaultLevel(t *testing.T) {
	lvl := levels.Default()

	expected := [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 0, 0, 1},
		{0, 0, 0, 0, 0},
	}
	if !reflect.DeepEqual(lvl.Grid, expected) {
		t.Errorf("Default().Grid = %v, expected %v", lvl.Grid, expected)
	}
	if lvl.ID != levels.DefaultID {
		t.Errorf("Default().ID = %q, expected %q", lvl.ID, levels.DefaultID)
	}
}

func TestBuiltinLoadAll(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(lvls) < 3 {
		t.Errorf("expected at least 3 builtin levels, got %d", len(lvls))
	}

	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestBuiltinTower(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("tower")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	rows, cols := lvl.Size()
	if rows != 6 || cols != 5 {
		t.Errorf("Size() = %dx%d, expected 6x5", rows, cols)
	}
	if lvl.Grid[1][2] != 3 {
		t.Errorf("Grid[1][2] = %d, expected 3 (enemy marker)", lvl.Grid[1][2])
	}
	if lvl.Grid[2][0] != 1 || lvl.Grid[2][4] != 1 {
		t.Errorf("Grid[2] = %v, expected solid edges", lvl.Grid[2])
	}
}

func TestLoadTMXGridLayer(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	lvl, err := levels.NewLoader(fsys, "maps").LoadFile("maps/test.tmx")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	// Tile 1 has no kind property and counts as solid; tile 2 carries kind=2
	expected := [][]int{
		{1, 0, 2},
		{0, 1, 0},
	}
	if !reflect.DeepEqual(lvl.Grid, expected) {
		t.Errorf("Grid = %v, expected %v", lvl.Grid, expected)
	}
	if lvl.ID != "test" {
		t.Errorf("ID = %q, expected %q", lvl.ID, "test")
	}
}

func TestLoadTMXMissingLayer(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="60" tileheight="20">
 <layer id="1" name="other" width="1" height="1">
  <data encoding="csv">0</data>
 </layer>
</map>
`)
	fsys := fstest.MapFS{"x.tmx": &fstest.MapFile{Data: data}}

	if _, err := levels.NewLoader(fsys, ".").LoadFile("x.tmx"); err == nil {
		t.Error("expected error for map without grid layer")
	}
}

func TestLoadYAMLDefaultsID(t *testing.T) {
	fsys := fstest.MapFS{
		"lv/ragged.yml": &fstest.MapFile{Data: []byte("grid:\n  - [1, 0, 1]\n  - [2]\n")},
	}

	lvl, err := levels.NewLoader(fsys, "lv").LoadFile("lv/ragged.yml")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if lvl.ID != "ragged" || lvl.Name != "ragged" {
		t.Errorf("ID/Name = %q/%q, expected ragged/ragged", lvl.ID, lvl.Name)
	}

	rows, cols := lvl.Size()
	if rows != 2 || cols != 3 {
		t.Errorf("Size() = %dx%d, expected 2x3", rows, cols)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	fsys := fstest.MapFS{"a.json": &fstest.MapFile{Data: []byte("{}")}}

	if _, err := levels.NewLoader(fsys, ".").LoadFile("a.json"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoadByIDNotFound(t *testing.T) {
	if _, err := levels.Builtin().LoadByID("nope"); err == nil {
		t.Error("expected error for unknown level ID")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(file, []byte("id: mine\ngrid:\n  - [1, 1]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		ref    string
		wantID string
		err    bool
	}{
		{"empty", "", levels.DefaultID, false},
		{"builtin id", "stairs", "stairs", false},
		{"file path", file, "mine", false},
		{"unknown", "missing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := levels.Resolve(tt.ref)
			if tt.err {
				if err == nil {
					t.Errorf("Resolve(%q) expected error", tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.ref, err)
			}
			if lvl.ID != tt.wantID {
				t.Errorf("Resolve(%q).ID = %q, expected %q", tt.ref, lvl.ID, tt.wantID)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	tests := map[string]bool{
		"a.yaml": true,
		"a.YML":  true,
		"a.tmx":  true,
		"a.txt":  false,
		"a":      false,
	}
	for name, want := range tests {
		if got := levels.Supported(name); got != want {
			t.Errorf("Supported(%q) = %v, expected %v", name, got, want)
		}
	}
}
