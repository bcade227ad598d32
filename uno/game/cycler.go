package game

const (
	counterclockwise = -1
	clockwise        = 1
)

// Cycler tracks the current seat index and rotation direction over a fixed
// number of seats. All arithmetic wraps with a non-negative modulo.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: clockwise,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Next returns the seat one step ahead in the current direction, without
// moving.
func (c *Cycler) Next() int {
	if c.size == 0 {
		return c.current
	}
	return ((c.current+c.direction)%c.size + c.size) % c.size
}

// Advance moves one seat in the current direction.
func (c *Cycler) Advance() int {
	c.current = c.Next()
	return c.current
}

// Skip moves two seats in the current direction, skipping exactly one
// player.
func (c *Cycler) Skip() int {
	if c.size == 0 {
		return c.current
	}
	c.current = ((c.current+2*c.direction)%c.size + c.size) % c.size
	return c.current
}

// Reverse flips the rotation direction.
func (c *Cycler) Reverse() {
	switch c.direction {
	case clockwise:
		c.direction = counterclockwise
	case counterclockwise:
		c.direction = clockwise
	}
}

// Restore rewinds the tracker to a captured seat and direction.
func (c *Cycler) Restore(current int, direction int) {
	c.current = current
	c.direction = direction
}
