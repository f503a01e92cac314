package wordart

// Direction names a gradient axis over the canvas. The eight values map
// deterministically to a line endpoint pair; DirectionNone means the spec's
// raw angle is used instead.
type Direction int

const (
	// DirectionNone selects the raw angle of the gradient spec.
	DirectionNone Direction = iota
	// DirectionLeftRight runs from the left edge to the right edge.
	DirectionLeftRight
	// DirectionRightLeft runs from the right edge to the left edge.
	DirectionRightLeft
	// DirectionTopBottom runs from the top edge to the bottom edge.
	DirectionTopBottom
	// DirectionBottomTop runs from the bottom edge to the top edge.
	DirectionBottomTop
	// DirectionDiagonal runs from the top-left corner to the bottom-right.
	DirectionDiagonal
	// DirectionDiagonalReverse runs from the bottom-right corner to the top-left.
	DirectionDiagonalReverse
	// DirectionDiagonalBottom runs from the bottom-left corner to the top-right.
	DirectionDiagonalBottom
	// DirectionDiagonalBottomReverse runs from the top-right corner to the bottom-left.
	DirectionDiagonalBottomReverse
)

var directionNames = map[Direction]string{
	DirectionNone:                  "",
	DirectionLeftRight:             "left_right",
	DirectionRightLeft:             "right_left",
	DirectionTopBottom:             "top_bottom",
	DirectionBottomTop:             "bottom_top",
	DirectionDiagonal:              "diagonal",
	DirectionDiagonalReverse:       "diagonal_reverse",
	DirectionDiagonalBottom:        "diagonal_bottom",
	DirectionDiagonalBottomReverse: "diagonal_bottom_reverse",
}

// String returns the style-file name of the direction.
func (d Direction) String() string {
	return directionNames[d]
}

// ParseDirection maps a style-file direction name to a Direction.
// Unknown names report ok=false.
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "left_right":
		return DirectionLeftRight, true
	case "right_left":
		return DirectionRightLeft, true
	case "top_bottom":
		return DirectionTopBottom, true
	case "bottom_top":
		return DirectionBottomTop, true
	case "diagonal":
		return DirectionDiagonal, true
	case "diagonal_reverse":
		return DirectionDiagonalReverse, true
	case "diagonal_bottom":
		return DirectionDiagonalBottom, true
	case "diagonal_bottom_reverse":
		return DirectionDiagonalBottomReverse, true
	}
	return DirectionNone, false
}

// Angle returns the equivalent gradient angle in degrees, with 0 pointing
// right and positive turning counter-clockwise as seen on screen. This is
// the mapping SVG interchange uses when endpoints collapse to an angle.
func (d Direction) Angle() float64 {
	switch d {
	case DirectionRightLeft:
		return 180
	case DirectionTopBottom:
		return -90
	case DirectionBottomTop:
		return 90
	case DirectionDiagonal:
		return -45
	case DirectionDiagonalReverse:
		return 135
	case DirectionDiagonalBottom:
		return 45
	case DirectionDiagonalBottomReverse:
		return -135
	default:
		return 0
	}
}

// lineEndpoints returns the gradient line for a canvas whose pixel centers
// span [0,w-1]x[0,h-1].
func (d Direction) lineEndpoints(w, h float64) (start, end Point) {
	right, bottom := w-1, h-1
	cx, cy := right/2, bottom/2

	switch d {
	case DirectionRightLeft:
		return Pt(right, cy), Pt(0, cy)
	case DirectionTopBottom:
		return Pt(cx, 0), Pt(cx, bottom)
	case DirectionBottomTop:
		return Pt(cx, bottom), Pt(cx, 0)
	case DirectionDiagonal:
		return Pt(0, 0), Pt(right, bottom)
	case DirectionDiagonalReverse:
		return Pt(right, bottom), Pt(0, 0)
	case DirectionDiagonalBottom:
		return Pt(0, bottom), Pt(right, 0)
	case DirectionDiagonalBottomReverse:
		return Pt(right, 0), Pt(0, bottom)
	default: // DirectionLeftRight
		return Pt(0, cy), Pt(right, cy)
	}
}
