package breath

// Point is a position in screen coordinates.
type Point struct {
	X, Y float64
}

// lerp moves from a towards b by fraction f.
func lerp(a, b Point, f float64) Point {
	return Point{
		X: a.X + f*(b.X-a.X),
		Y: a.Y + f*(b.Y-a.Y),
	}
}

// Square is the path the ball travels, one edge per phase.
type Square struct {
	TopLeft     Point
	TopRight    Point
	BottomRight Point
	BottomLeft  Point
}

// NewSquare returns a square of the given side length centered on (cx, cy).
func NewSquare(cx, cy, size int) Square {
	half := size / 2
	left, right := float64(cx-half), float64(cx+half)
	top, bottom := float64(cy-half), float64(cy+half)
	return Square{
		TopLeft:     Point{X: left, Y: top},
		TopRight:    Point{X: right, Y: top},
		BottomRight: Point{X: right, Y: bottom},
		BottomLeft:  Point{X: left, Y: bottom},
	}
}

// Corners returns the corners clockwise from top-left.
func (s Square) Corners() [4]Point {
	return [4]Point{s.TopLeft, s.TopRight, s.BottomRight, s.BottomLeft}
}

// Edge is one side of the square in traversal order.
type Edge struct {
	From, To Point
	Phase    Phase
}

// Edges returns the four sides in the order the ball traverses them:
// top (inhale), right (hold), bottom (exhale), left (hold).
func (s Square) Edges() [4]Edge {
	return [4]Edge{
		{From: s.TopLeft, To: s.TopRight, Phase: Inhale},
		{From: s.TopRight, To: s.BottomRight, Phase: Hold},
		{From: s.BottomRight, To: s.BottomLeft, Phase: Exhale},
		{From: s.BottomLeft, To: s.TopLeft, Phase: Hold},
	}
}
