package journal

// Cursor walks a materialized sequence with exactly one element of
// lookahead. There is no seeking backward; the whole document is read
// into memory up front, so the cursor is just an index.
type Cursor[T any] struct {
	items []T
	pos   int
}

// NewCursor returns a cursor positioned before the first element.
func NewCursor[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// Peek returns the next element without consuming it.
func (c *Cursor[T]) Peek() (T, error) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, ErrEndOfSequence
	}
	return c.items[c.pos], nil
}

// Pop returns the next element and consumes it.
func (c *Cursor[T]) Pop() (T, error) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, ErrEndOfSequence
	}
	item := c.items[c.pos]
	c.pos++
	return item, nil
}

// AtEnd reports whether the sequence is exhausted.
func (c *Cursor[T]) AtEnd() bool {
	return c.pos >= len(c.items)
}
