package mines

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Shuffler permutes n elements uniformly using swap. *rand.Rand from both
// math/rand and math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalSource struct{}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// Generator places mines using its random source. Two generators seeded the
// same way produce the same boards.
type Generator struct {
	rng Shuffler
}

// DefaultGenerator draws from the process-wide math/rand source.
var DefaultGenerator = NewGenerator(globalSource{})

func NewGenerator(rng Shuffler) *Generator {
	if rng == nil {
		rng = globalSource{}
	}
	return &Generator{rng}
}

// GenerateMinePositions picks mine positions with DefaultGenerator.
func GenerateMinePositions(rows, cols, mineCount int, exclude *Position) []Position {
	return DefaultGenerator.MinePositions(rows, cols, mineCount, exclude)
}

// MinePositions returns up to mineCount distinct positions on a rows x cols
// grid, none of them inside the safe zone around exclude. mineCount is
// clamped to the number of cells left outside the safe zone.
func (g *Generator) MinePositions(rows, cols, mineCount int, exclude *Position) []Position {
	excluded := safeZone(rows, cols, exclude)

	available := make([]Position, 0, max(rows*cols-excluded.Size(), 0))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := Position{r, c}
			if !excluded.Has(p) {
				available = append(available, p)
			}
		}
	}
	count := max(0, min(mineCount, len(available)))

	g.rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	return available[:count]
}

// CreateBoard builds an empty board for cfg, places mines outside the safe
// zone of exclude and numbers the remaining cells.
func (g *Generator) CreateBoard(cfg GameConfig, exclude *Position) *Board {
	positions := g.MinePositions(cfg.Rows, cfg.Cols, cfg.MineCount, exclude)
	return CalculateNumbers(PlaceMines(NewBoard(cfg.Rows, cfg.Cols), positions))
}

func safeZone(rows, cols int, exclude *Position) mapset.Set[Position] {
	zone := mapset.New[Position]()
	if exclude == nil {
		return zone
	}
	zone.Put(*exclude)
	for _, n := range GetNeighbors(exclude.Row, exclude.Col, rows, cols) {
		zone.Put(n)
	}
	return zone
}
