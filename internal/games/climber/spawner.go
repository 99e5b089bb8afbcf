package climber

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-climber/internal/core"
)

// Spawner generates rows of platform segments across fixed lanes.
type Spawner struct {
	rng    *rand.Rand
	lanes  int
	cellW  float64
	cellH  float64
	spawnY float64
	logger *log.Logger
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(seed int64, lanes int, cellW, cellH, spawnY float64, logger *log.Logger) *Spawner {
	if lanes < 0 {
		lanes = 0
	}
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		lanes:  lanes,
		cellW:  cellW,
		cellH:  cellH,
		spawnY: spawnY,
		logger: logger,
	}
}

// Reset reseeds the RNG.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
}

// LaneCount returns the number of lanes.
func (sp *Spawner) LaneCount() int {
	return sp.lanes
}

// Count draws how many segments the next row gets, uniform in [0, lanes].
func (sp *Spawner) Count() int {
	return sp.rng.Intn(sp.lanes + 1)
}

// Lanes picks n distinct lane indices by rejection sampling.
// n is clamped to [0, lanes] so the loop always terminates.
func (sp *Spawner) Lanes(n int) []int {
	n = core.Clamp(n, 0, sp.lanes)

	chosen := make([]int, 0, n)
	taken := make([]bool, sp.lanes)
	for len(chosen) < n {
		lane := sp.rng.Intn(sp.lanes)
		if taken[lane] {
			continue
		}
		taken[lane] = true
		chosen = append(chosen, lane)
	}
	return chosen
}

// Row builds one solid obstacle per lane at the spawn height.
func (sp *Spawner) Row(lanes []int) []Obstacle {
	row := make([]Obstacle, 0, len(lanes))
	for _, lane := range lanes {
		row = append(row, Obstacle{
			Kind: KindSolid,
			Box:  core.NewBox(float64(lane)*sp.cellW, sp.spawnY, sp.cellW, sp.cellH),
		})
	}
	return row
}

// Spawn draws a row and prepends it to the set. Returns the row size;
// zero is a valid empty row.
func (sp *Spawner) Spawn(set *ObstacleSet) int {
	return sp.SpawnN(set, sp.Count())
}

// SpawnN places a row of exactly n segments (clamped to the lane count).
func (sp *Spawner) SpawnN(set *ObstacleSet, n int) int {
	lanes := sp.Lanes(n)
	set.Prepend(sp.Row(lanes))
	if sp.logger != nil {
		sp.logger.Debug("spawned row", "segments", len(lanes), "lanes", lanes, "total", set.Len())
	}
	return len(lanes)
}
