package limits

import "fmt"

const DefaultMaxDepth = 256

// Depth tracks how deeply a recursive walk has nested. A zero limit
// disables the guard.
type Depth struct {
	limit int
	cur   int
}

func NewDepth(limit int) *Depth {
	if limit < 0 {
		limit = 0
	}
	return &Depth{limit: limit}
}

func (d *Depth) Limit() int {
	if d == nil {
		return 0
	}
	return d.limit
}

func (d *Depth) Current() int {
	if d == nil {
		return 0
	}
	return d.cur
}

func MaxDepthMessage(limit int) string {
	return fmt.Sprintf("max nesting depth exceeded (%d)", limit)
}

type MaxDepthError struct {
	Limit int
}

func (e MaxDepthError) Error() string {
	return MaxDepthMessage(e.Limit)
}

// Enter records one more level of nesting. Every successful Enter must be
// paired with a Leave.
func (d *Depth) Enter() error {
	if d == nil {
		return nil
	}
	if d.limit > 0 && d.cur >= d.limit {
		return MaxDepthError{Limit: d.limit}
	}
	d.cur++
	return nil
}

func (d *Depth) Leave() {
	if d == nil || d.cur == 0 {
		return
	}
	d.cur--
}
