package core

// Line returns the points of the segment from (x1, y1) to (x2, y2), both
// endpoints included, ordered from the first endpoint to the second.
//
// Each step i in [0, r], with r the larger of the two axis distances, advances
// every axis by floor(i*d/r). This is a truncating interpolation rather than
// Bresenham: on shallow or steep segments the same point may be emitted twice
// in a row. Callers draw idempotently, so duplicates are harmless.
func Line(x1, y1, x2, y2 int) []Point {
	dx := Abs(x2 - x1)
	dy := Abs(y2 - y1)
	dirX, dirY := 1, 1
	if x1 > x2 {
		dirX = -1
	}
	if y1 > y2 {
		dirY = -1
	}

	r := Max(dx, dy)
	if r == 0 {
		return []Point{{X: x1, Y: y1}}
	}

	points := make([]Point, 0, r+1)
	for i := 0; i <= r; i++ {
		points = append(points, Point{
			X: x1 + dirX*(i*dx/r),
			Y: y1 + dirY*(i*dy/r),
		})
	}
	return points
}
