package registry

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/sky-climber/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return stubGame{id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "stub-b", Title: "Stub B"}, stub("stub-b"))
	Register(GameInfo{ID: "stub-a", Title: "Stub A"}, stub("stub-a"))

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("Create().ID() = %q, expected stub-b", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) expected error")
	}
}

func TestLookup(t *testing.T) {
	Register(GameInfo{ID: "stub-lookup", Title: "Lookup Title"}, stub("stub-lookup"))

	tests := []struct {
		id        string
		wantTitle string
		wantErr   bool
	}{
		{"stub-lookup", "Lookup Title", false},
		{"missing", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			info, err := Lookup(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v, expected error %v", tt.id, err, tt.wantErr)
			}
			if info.Title != tt.wantTitle {
				t.Errorf("Lookup(%q).Title = %q, expected %q", tt.id, info.Title, tt.wantTitle)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "stub-lookup") {
				t.Errorf("Lookup(%q) error = %q, expected registered IDs listed", tt.id, err)
			}
		})
	}
}

func TestLookupDoesNotBuildGame(t *testing.T) {
	built := 0
	Register(GameInfo{ID: "stub-lazy", Title: "Lazy"}, func() Game {
		built++
		return stubGame{"stub-lazy"}
	})

	if _, err := Lookup("stub-lazy"); err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if built != 0 {
		t.Errorf("factory calls after Lookup() = %d, expected 0", built)
	}
	if _, err := Create("stub-lazy"); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if built != 1 {
		t.Errorf("factory calls after Create() = %d, expected 1", built)
	}
}

func TestIDsSorted(t *testing.T) {
	Register(GameInfo{ID: "stub-ids-2"}, stub("stub-ids-2"))
	Register(GameInfo{ID: "stub-ids-1"}, stub("stub-ids-1"))

	ids := IDs()
	if !slices.IsSorted(ids) {
		t.Errorf("IDs() = %v, expected sorted", ids)
	}
	if !slices.Contains(ids, "stub-ids-1") || !slices.Contains(ids, "stub-ids-2") {
		t.Errorf("IDs() = %v, expected stub-ids-1 and stub-ids-2", ids)
	}
}

func TestRegisterPanics(t *testing.T) {
	Register(GameInfo{ID: "stub-dup"}, stub("stub-dup"))

	tests := []struct {
		name string
		info GameInfo
		f    Factory
	}{
		{"duplicate", GameInfo{ID: "stub-dup"}, stub("stub-dup")},
		{"empty id", GameInfo{}, stub("")},
		{"nil factory", GameInfo{ID: "stub-nil"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%+v) did not panic", tt.info)
				}
			}()
			Register(tt.info, tt.f)
		})
	}
}
