package paper

import (
	"iter"
	"slices"
)

// CompoundPath is a group of paths that form one shape, such as a glyph
// with holes. Insideness is determined by the even-odd rule across all
// children.
//
// A path can belong to at most one compound path. Adding a path that
// belongs to another compound path moves it.
type CompoundPath struct {
	children []*Path
	bounds   option[Rect]
	length   option[float64]
}

var _ Owner = (*CompoundPath)(nil)

// NewCompoundPath returns a compound path with the given children.
func NewCompoundPath(children ...*Path) *CompoundPath {
	c := &CompoundPath{}
	for _, p := range children {
		c.AddChild(p)
	}
	return c
}

// Children returns the child paths. The slice must not be modified.
func (c *CompoundPath) Children() []*Path { return c.children }

// AddChild appends p to the children.
func (c *CompoundPath) AddChild(p *Path) {
	if p.owner == Owner(c) {
		return
	}
	if old, ok := p.owner.(*CompoundPath); ok {
		old.RemoveChild(p)
	}
	p.owner = c
	c.children = append(c.children, p)
	c.ChildChanged(p, ChangeStructure)
}

// RemoveChild removes p from the children. It reports whether p was a
// child.
func (c *CompoundPath) RemoveChild(p *Path) bool {
	i := slices.Index(c.children, p)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	p.owner = nil
	c.ChildChanged(p, ChangeStructure)
	return true
}

// ChildChanged implements [Owner].
func (c *CompoundPath) ChildChanged(p *Path, flags ChangeFlag) {
	if flags&(ChangeGeometry|ChangeStructure) != 0 {
		c.bounds.clear()
		c.length.clear()
	}
}

// Bounds returns the union of the bounds of all non-empty children.
func (c *CompoundPath) Bounds() (Rect, error) {
	if c.bounds.isSet {
		return c.bounds.value, nil
	}
	var r Rect
	found := false
	for _, p := range c.children {
		b, err := p.Bounds()
		if err != nil {
			continue
		}
		if found {
			r = r.Union(b)
		} else {
			r = b
			found = true
		}
	}
	if !found {
		return Rect{}, ErrEmptyPath
	}
	c.bounds.set(r)
	return r, nil
}

// Length returns the summed length of all children.
func (c *CompoundPath) Length() float64 {
	if !c.length.isSet {
		var l float64
		for _, p := range c.children {
			l += p.Length()
		}
		c.length.set(l)
	}
	return c.length.value
}

// Contains reports whether pt lies inside the compound path, using the
// even-odd rule.
func (c *CompoundPath) Contains(pt Point) bool {
	w := 0
	for _, p := range c.children {
		w += p.winding(pt)
	}
	return w%2 != 0
}

// Reverse reverses all children.
func (c *CompoundPath) Reverse() {
	for _, p := range c.children {
		p.Reverse()
	}
}

// Smooth smooths all children. See [Path.Smooth].
func (c *CompoundPath) Smooth() {
	for _, p := range c.children {
		p.Smooth()
	}
}

// Elements returns the drawing elements of all children in order.
func (c *CompoundPath) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, p := range c.children {
			for el := range p.Elements() {
				if !yield(el) {
					return
				}
			}
		}
	}
}

func (c *CompoundPath) current() (*Path, error) {
	if len(c.children) == 0 {
		return nil, ErrNoCurrentPoint
	}
	return c.children[len(c.children)-1], nil
}

// MoveTo starts a new child path at pt.
func (c *CompoundPath) MoveTo(pt Point) {
	p := &Path{}
	p.MoveTo(pt)
	c.AddChild(p)
}

// LineTo adds a line to the current child.
func (c *CompoundPath) LineTo(pt Point) error {
	p, err := c.current()
	if err != nil {
		return err
	}
	p.LineTo(pt)
	return nil
}

// CubicCurveTo adds a cubic curve to the current child.
func (c *CompoundPath) CubicCurveTo(h1, h2, to Point) error {
	p, err := c.current()
	if err != nil {
		return err
	}
	return p.CubicCurveTo(h1, h2, to)
}

// QuadraticCurveTo adds a quadratic curve to the current child.
func (c *CompoundPath) QuadraticCurveTo(h, to Point) error {
	p, err := c.current()
	if err != nil {
		return err
	}
	return p.QuadraticCurveTo(h, to)
}

// ArcThrough adds an arc to the current child.
func (c *CompoundPath) ArcThrough(through, to Point) error {
	p, err := c.current()
	if err != nil {
		return err
	}
	return p.ArcThrough(through, to)
}

// ClosePath closes the current child.
func (c *CompoundPath) ClosePath() error {
	p, err := c.current()
	if err != nil {
		return err
	}
	p.ClosePath()
	return nil
}
