package sandpile

// Point is a grid-relative coordinate. The origin is (0,0) and y grows
// southward, so rows run north to south.
type Point struct {
	X, Y int
}

// Direction names one of the four neighbour links of a pile.
type Direction int

const (
	North Direction = iota
	West
	East
	South
)

// Directions lists the neighbour links in distribution order.
var Directions = [4]Direction{North, West, East, South}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Offset returns the coordinate delta for stepping one pile in direction d.
func (d Direction) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case West:
		return -1, 0
	case East:
		return 1, 0
	case South:
		return 0, 1
	}
	return 0, 0
}

// Policy selects what happens when a topple reaches the edge of the grid.
type Policy int

const (
	// Bounded keeps the grid fixed; grains pushed over an edge are lost.
	Bounded Policy = iota
	// Expanding grows the grid by one ring toward every missing neighbour
	// before distributing, so no grain is ever lost.
	Expanding
)

func (p Policy) String() string {
	switch p {
	case Bounded:
		return "bounded"
	case Expanding:
		return "expanding"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name back into a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "bounded", "fixed":
		return Bounded, true
	case "expanding", "expand":
		return Expanding, true
	}
	return Bounded, false
}

// Dimensions is the inclusive rectangle of coordinates covered by a grid.
type Dimensions struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Symmetric returns bounds extending maxX and maxY piles either side of the
// origin.
func Symmetric(maxX, maxY int) Dimensions {
	return Dimensions{MinX: -maxX, MaxX: maxX, MinY: -maxY, MaxY: maxY}
}

// Square is Symmetric with equal extents on both axes.
func Square(n int) Dimensions { return Symmetric(n, n) }

// Valid reports whether the rectangle contains the origin.
func (d Dimensions) Valid() bool {
	return d.MaxX >= 0 && d.MaxY >= 0 && d.MinX <= 0 && d.MinY <= 0
}

// Contains reports whether (x,y) lies inside the rectangle.
func (d Dimensions) Contains(x, y int) bool {
	return x >= d.MinX && x <= d.MaxX && y >= d.MinY && y <= d.MaxY
}

// Width is the number of columns.
func (d Dimensions) Width() int { return d.MaxX - d.MinX + 1 }

// Height is the number of rows.
func (d Dimensions) Height() int { return d.MaxY - d.MinY + 1 }

// Area is the number of piles inside the rectangle.
func (d Dimensions) Area() int { return d.Width() * d.Height() }

// Pile is a read-only view of one cell of the grid.
type Pile struct {
	Point
	Grains int
}

// Stats accumulates counters over the lifetime of a grid.
type Stats struct {
	Drops       int // calls that added grains
	GrainsAdded int
	GrainsLost  int // grains pushed over the edge of a bounded grid
	Topples     int // piles that actually toppled
	Processed   int // piles pulled from the work-set
	Expansions  int // rings added by an expanding grid
}
