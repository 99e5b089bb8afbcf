package climber

import "github.com/vovakirdan/sky-climber/internal/core"

// Kind tags what an obstacle is. Grid cells encode it as a small integer.
type Kind uint8

const (
	KindEmpty        Kind = iota // Background cell, drawn but never collided with
	KindSolid                    // Platform from the grid or the spawner
	KindSpawnedSolid             // Solid platform marked as spawned in the grid
	KindEnemy                    // Enemy marker, solid like a platform
)

// KindFromCell maps a grid value to a kind. Unknown values are empty.
func KindFromCell(v int) Kind {
	switch v {
	case 1:
		return KindSolid
	case 2:
		return KindSpawnedSolid
	case 3, 4, 5:
		return KindEnemy
	default:
		return KindEmpty
	}
}

// Collidable reports whether the player resolves against this kind.
func (k Kind) Collidable() bool {
	switch k {
	case KindSolid, KindSpawnedSolid, KindEnemy:
		return true
	case KindEmpty:
		return false
	default:
		return false
	}
}

// Color returns the fill color used by render sinks.
func (k Kind) Color() core.Color {
	switch k {
	case KindEmpty:
		return core.ColorDarkGray
	case KindSolid:
		return core.ColorBlue
	case KindSpawnedSolid:
		return core.ColorRed
	case KindEnemy:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSolid:
		return "solid"
	case KindSpawnedSolid:
		return "spawned"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Obstacle is a world rectangle. Only Box.Y changes after creation.
type Obstacle struct {
	Kind Kind
	Box  core.Box
}

// ObstacleSet is the ordered collection of live obstacles.
// Newly spawned rows go to the front. Positions may overlap.
type ObstacleSet struct {
	items []Obstacle
}

// NewObstacleSet creates a set holding the given obstacles in order.
func NewObstacleSet(items ...Obstacle) *ObstacleSet {
	s := &ObstacleSet{items: make([]Obstacle, 0, len(items))}
	s.items = append(s.items, items...)
	return s
}

// Len returns the number of obstacles.
func (s *ObstacleSet) Len() int {
	return len(s.items)
}

// At returns the obstacle at index i.
func (s *ObstacleSet) At(i int) Obstacle {
	return s.items[i]
}

// All returns the live slice. Callers must not retain it across mutations.
func (s *ObstacleSet) All() []Obstacle {
	return s.items
}

// Prepend places a row ahead of the existing obstacles.
func (s *ObstacleSet) Prepend(row []Obstacle) {
	if len(row) == 0 {
		return
	}
	merged := make([]Obstacle, 0, len(row)+len(s.items))
	merged = append(merged, row...)
	merged = append(merged, s.items...)
	s.items = merged
}

// Scroll moves every obstacle down by dy.
func (s *ObstacleSet) Scroll(dy float64) {
	for i := range s.items {
		s.items[i].Box.Y += dy
	}
}

// EvictBelow removes obstacles whose top edge is past maxY.
// Returns the number removed.
func (s *ObstacleSet) EvictBelow(maxY float64) int {
	kept := s.items[:0]
	for _, o := range s.items {
		if o.Box.Y <= maxY {
			kept = append(kept, o)
		}
	}
	removed := len(s.items) - len(kept)
	// Zero the tail so evicted values do not linger in the backing array
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = Obstacle{}
	}
	s.items = kept
	return removed
}

// Clone returns an independent copy of the set.
func (s *ObstacleSet) Clone() *ObstacleSet {
	return NewObstacleSet(s.items...)
}
