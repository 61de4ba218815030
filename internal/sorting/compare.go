package sorting

import (
	"cmp"
	"strings"

	"github.com/maruel/natural"

	"github.com/evanrichards/tsorder/internal/config"
)

// Comparator orders two elements of the same rank.
type Comparator struct {
	Type       config.SortType
	Order      config.Order
	IgnoreCase bool
}

// NewComparator returns the comparator described by cfg.
func NewComparator(cfg config.SortConfig) Comparator {
	return Comparator{Type: cfg.Type, Order: cfg.Order, IgnoreCase: cfg.IgnoreCase}
}

// Compare returns a negative number when a sorts before b, a positive number
// when b sorts before a and zero when they are interchangeable.
func (c Comparator) Compare(a, b Element) int {
	var r int
	switch c.Type {
	case config.TypeNatural:
		r = c.natural(a.Name, b.Name)
	case config.TypeLineLength:
		r = cmp.Compare(a.Size, b.Size)
		if r == 0 {
			r = c.alphabetical(a.Name, b.Name)
		}
	default:
		r = c.alphabetical(a.Name, b.Name)
	}
	if c.Order == config.OrderDesc {
		return -r
	}
	return r
}

// Less is Compare as a predicate.
func (c Comparator) Less(a, b Element) bool {
	return c.Compare(a, b) < 0
}

func (c Comparator) fold(s string) string {
	if c.IgnoreCase {
		return strings.ToLower(s)
	}
	return s
}

func (c Comparator) alphabetical(a, b string) int {
	return strings.Compare(c.fold(a), c.fold(b))
}

// natural compares digit runs by value. Names natural ordering considers
// equal, such as "a01" and "a1", fall back to alphabetical order.
func (c Comparator) natural(a, b string) int {
	fa, fb := c.fold(a), c.fold(b)
	switch {
	case natural.Less(fa, fb):
		return -1
	case natural.Less(fb, fa):
		return 1
	default:
		return strings.Compare(fa, fb)
	}
}
