package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the four ways to move on a grid: ↓ ↑ ← →
type Direction uint8

// Directions in turning order; each is a right turn from the one before.
const (
	Right Direction = iota
	Down
	Left
	Up

	numDirections = 4
)

// Directions lists all directions in ordinal order.
var Directions = [numDirections]Direction{Right, Down, Left, Up}

var directionNames = [numDirections]string{"Right", "Down", "Left", "Up"}

// DirectionFromOrdinal returns the direction with ordinal n, if any.
func DirectionFromOrdinal(n int) (Direction, bool) {
	if n < 0 || n >= numDirections {
		return 0, false
	}
	return Direction(n), true
}

// ParseDirection parses a full direction name (in any case), one of the
// letters R D L U, or one of the arrows > v < ^.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case ">", "R", "r":
		return Right, nil
	case "v", "V", "D", "d":
		return Down, nil
	case "<", "L", "l":
		return Left, nil
	case "^", "U", "u":
		return Up, nil
	}
	for d, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("invalid direction %q", s)
}

func (d Direction) String() string {
	if d < numDirections {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Direction) turn(n uint8) Direction { return Direction((uint8(d) + n) % numDirections) }

// TurnLeft turns 90 degrees to the left.
func (d Direction) TurnLeft() Direction { return d.turn(3) }

// TurnRight turns 90 degrees to the right.
func (d Direction) TurnRight() Direction { return d.turn(1) }

// TurnAround turns 180 degrees.
func (d Direction) TurnAround() Direction { return d.turn(2) }

// Displacement returns the offset of one step in direction d.
//
// Grids are addressed as rows like on a screen, so Up subtracts one from Y
// and Down adds one.
func Displacement[T Number](d Direction) Pt[T] {
	switch d % numDirections {
	case Right:
		return Pt[T]{1, 0}
	case Down:
		return Pt[T]{0, 1}
	case Left:
		return Pt[T]{-1, 0}
	case Up:
		return Pt[T]{0, -1}
	}
	panic("unreachable")
}

// Delta is Displacement over ints.
func (d Direction) Delta() Pt[int] { return Displacement[int](d) }
