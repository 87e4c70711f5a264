// pkg/maze/scatter.go
package maze

// RandomSource is satisfied by *rand.Rand.
type RandomSource interface {
	Float64() float64
}

// Scatter places a right and a bottom wall on every inner cell edge with the
// given probability and returns how many walls were placed. It makes no
// traversability guarantee; carving a proper maze is the generator's job.
func Scatter(g *Grid, rng RandomSource, rate float64) int {
	placed := 0
	for col := 0; col < g.cols; col++ {
		for row := 0; row < g.rows; row++ {
			if col < g.cols-1 && rng.Float64() < rate {
				if _, err := g.SetWall(col, row, Right); err == nil {
					placed++
				}
			}
			if row < g.rows-1 && rng.Float64() < rate {
				if _, err := g.SetWall(col, row, Bottom); err == nil {
					placed++
				}
			}
		}
	}
	return placed
}
