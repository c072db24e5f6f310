// Package shape demonstrates composing behavior from small single-method
// interfaces instead of one wide contract.
package shape

import "fmt"

// Drawable renders itself to a human-readable line.
type Drawable interface {
	Draw() string
}

// Movable relocates to absolute coordinates.
type Movable interface {
	Move(x, y int)
}

// Resizable scales by a factor.
type Resizable interface {
	Resize(factor float64)
}

// Circle implements only Drawable.
type Circle struct{}

// Draw implements Drawable.
func (Circle) Draw() string { return "Drawing a Circle" }

// Rectangle implements only Drawable.
type Rectangle struct{}

// Draw implements Drawable.
func (Rectangle) Draw() string { return "Drawing a Rectangle" }

// Shape is a named figure satisfying all three contracts.
type Shape struct {
	name string
	x, y int
	size float64
}

// NewShape creates a figure at the origin with unit size.
func NewShape(name string) *Shape {
	return &Shape{name: name, size: 1.0}
}

// Draw implements Drawable.
func (s *Shape) Draw() string {
	return fmt.Sprintf("Drawing %s at (%d,%d) size=%g", s.name, s.x, s.y, s.size)
}

// Move implements Movable.
func (s *Shape) Move(x, y int) {
	s.x, s.y = x, y
}

// Resize implements Resizable.
func (s *Shape) Resize(factor float64) {
	s.size *= factor
}

// Render draws every shape in order.
func Render(shapes []Drawable) []string {
	lines := make([]string, len(shapes))
	for i, sh := range shapes {
		lines[i] = sh.Draw()
	}
	return lines
}

var (
	_ Drawable  = Circle{}
	_ Drawable  = Rectangle{}
	_ Drawable  = (*Shape)(nil)
	_ Movable   = (*Shape)(nil)
	_ Resizable = (*Shape)(nil)
)
