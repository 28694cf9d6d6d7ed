package value

// Counter is the program-global rename counter (spec §3): a single
// nonnegative integer, initialized to 0, incremented once per rename
// Counter term evaluated, shared across the whole program run and never
// reset by ForEach.
//
// This is distinct from the interpreter's operation counter (spec §8
// property 1), which counts successful non-BinaryExpression dispatches;
// the two counters are tracked separately even though both live on the
// interpreter (see internal/interp).
type Counter struct {
	next int
}

// Next returns the current value and increments the counter.
func (c *Counter) Next() int {
	v := c.next
	c.next++
	return v
}

// Value returns the current counter value without incrementing it.
func (c *Counter) Value() int {
	return c.next
}
