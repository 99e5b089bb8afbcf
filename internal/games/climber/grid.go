package climber

import "github.com/vovakirdan/sky-climber/internal/core"

// DefaultGrid is the opening layout: one partial floor on the fourth row.
// Rows are listed top to bottom.
func DefaultGrid() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 0, 0, 1},
		{0, 0, 0, 0, 0},
	}
}

// ToObstacles converts a row-major grid into world rectangles.
// Cell (row, col) lands at (col*cellW, row*cellH). Every cell is emitted,
// empty ones included, so the background is drawn from the same set.
// Ragged rows are converted cell by cell.
func ToObstacles(grid [][]int, cellW, cellH float64) *ObstacleSet {
	count := 0
	for _, row := range grid {
		count += len(row)
	}

	items := make([]Obstacle, 0, count)
	for r, row := range grid {
		for c, v := range row {
			items = append(items, Obstacle{
				Kind: KindFromCell(v),
				Box:  core.NewBox(float64(c)*cellW, float64(r)*cellH, cellW, cellH),
			})
		}
	}
	return &ObstacleSet{items: items}
}

// GridWidth returns the widest row length.
func GridWidth(grid [][]int) int {
	w := 0
	for _, row := range grid {
		w = core.Max(w, len(row))
	}
	return w
}
