package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any coordinate type that has a negation.
type Number interface {
	constraints.Signed | constraints.Float
}

// Pt is a point on a 2D grid; on a map of rows, X is the column and Y is the
// row, growing downward.
type Pt[T Number] struct {
	X, Y T
}

// P is shorthand for Pt{x, y}.
func P[T Number](x, y T) Pt[T] { return Pt[T]{x, y} }

func (p Pt[T]) String() string { return fmt.Sprintf("(%v, %v)", p.X, p.Y) }

// Add returns p+q.
func (p Pt[T]) Add(q Pt[T]) Pt[T] { return Pt[T]{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Pt[T]) Sub(q Pt[T]) Pt[T] { return Pt[T]{p.X - q.X, p.Y - q.Y} }

// Neg returns -p.
func (p Pt[T]) Neg() Pt[T] { return Pt[T]{-p.X, -p.Y} }

// Manhattan returns the taxicab distance between p and q.
func (p Pt[T]) Manhattan(q Pt[T]) T {
	d := p.Sub(q)
	return abs(d.X) + abs(d.Y)
}

// Move returns the point one step from p in direction d.
func (p Pt[T]) Move(d Direction) Pt[T] { return p.Add(Displacement[T](d)) }

// MoveBack returns the point one step from p against direction d.
func (p Pt[T]) MoveBack(d Direction) Pt[T] { return p.Sub(Displacement[T](d)) }

// Step moves p one step in direction d.
func (p *Pt[T]) Step(d Direction) { *p = p.Move(d) }

// StepBack moves p one step against direction d.
func (p *Pt[T]) StepBack(d Direction) { *p = p.MoveBack(d) }

func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
