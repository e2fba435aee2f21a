package game

// Built-in layout geometry. Positions are exogenous data as far as the
// engine is concerned; these builders just keep the literals short.

// rect appends a cols x rows block of positions starting at (x0, y0) on
// layer z, one unit apart.
func rect(ps []Position, x0, y0 float64, cols, rows int, z float64) []Position {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ps = append(ps, Position{X: x0 + float64(c), Y: y0 + float64(r), Z: z})
		}
	}
	return ps
}

// row appends a single row of n positions starting at (x0, y) on layer z.
func row(ps []Position, x0, y float64, n int, z float64) []Position {
	return rect(ps, x0, y, n, 1, z)
}

// turtlePositions builds the classic 144-tile turtle: an 87-tile base with
// the three half-row outriggers, then 36/16/4 pyramid layers and a single
// apex tile resting on the center four at half offsets.
func turtlePositions() []Position {
	var ps []Position

	// Base layer: eight rows of varying width...
	ps = row(ps, 1, 0, 12, 0)
	ps = row(ps, 3, 1, 8, 0)
	ps = row(ps, 2, 2, 10, 0)
	ps = row(ps, 1, 3, 12, 0)
	ps = row(ps, 1, 4, 12, 0)
	ps = row(ps, 2, 5, 10, 0)
	ps = row(ps, 3, 6, 8, 0)
	ps = row(ps, 1, 7, 12, 0)
	// ...plus the head and the two tail tiles, staggered between the
	// middle rows.
	ps = append(ps,
		Position{X: 0, Y: 3.5, Z: 0},
		Position{X: 13, Y: 3.5, Z: 0},
		Position{X: 14, Y: 3.5, Z: 0},
	)

	ps = rect(ps, 4, 1, 6, 6, 1)
	ps = rect(ps, 5, 2, 4, 4, 2)
	ps = rect(ps, 6, 3, 2, 2, 3)
	ps = append(ps, Position{X: 6.5, Y: 3.5, Z: 4})

	return ps
}

// fortressPositions builds a squat 140-tile block stack. Being under the
// full board size, it exercises the random-draw tile multiset.
func fortressPositions() []Position {
	var ps []Position
	ps = rect(ps, 0, 0, 12, 7, 0)
	ps = rect(ps, 1, 1, 10, 4, 1)
	ps = rect(ps, 4, 2, 4, 3, 2)
	ps = rect(ps, 5, 2, 2, 2, 3)
	return ps
}
