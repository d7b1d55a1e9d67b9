package engine

import (
	"github.com/vialkov/coil/internal/render"
	"github.com/vialkov/coil/internal/term"
)

// Container is a Node holding child nodes. Updates and rendering fan out to
// children in insertion order; events are offered to children in reverse
// order (topmost first) and stop at the first child that consumes one.
type Container struct {
	children []Node
}

// NewContainer creates a container with the given children.
func NewContainer(children ...Node) *Container {
	return &Container{children: children}
}

// WithChild appends a child and returns the container for chaining.
func (c *Container) WithChild(n Node) *Container {
	c.children = append(c.children, n)
	return c
}

// Update advances every child by dt.
func (c *Container) Update(dt float64) {
	for _, child := range c.children {
		child.Update(dt)
	}
}

// OnEvent offers the event to children from last to first. The first child
// returning true consumes the event and the result propagates upward.
func (c *Container) OnEvent(ev term.Event) bool {
	for i := len(c.children) - 1; i >= 0; i-- {
		if c.children[i].OnEvent(ev) {
			return true
		}
	}
	return false
}

// Render draws every child in insertion order, so later children paint over
// earlier ones.
func (c *Container) Render(r render.Renderer) {
	for _, child := range c.children {
		child.Render(r)
	}
}
