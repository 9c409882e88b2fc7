package model

import "sphereflake/internal/assert"

// List is a LIFO of elements. Add prepends, PullHead removes the most recently
// added element. Traversal order, and therefore which nodes win cache slots,
// depends on this discipline.
type List struct {
	items []Element
}

// Add prepends e.
func (l *List) Add(e Element) {
	l.items = append(l.items, e)
}

// HasData reports whether the list is non-empty.
func (l *List) HasData() bool {
	return len(l.items) > 0
}

// Len returns the number of elements held.
func (l *List) Len() int {
	return len(l.items)
}

// PullHead removes and returns the head element. Pulling from an empty list
// is a programming error.
func (l *List) PullHead() Element {
	assert.True(len(l.items) > 0, "PullHead on empty list")
	if len(l.items) == 0 {
		return nil
	}
	last := len(l.items) - 1
	e := l.items[last]
	l.items[last] = nil
	l.items = l.items[:last]
	return e
}

// CopyFrom adds every element of other to l, walking other from its head.
// The copied elements therefore come out of l in reverse order. Only the list
// structure is duplicated, the elements are shared.
func (l *List) CopyFrom(other *List) *List {
	for i := len(other.items) - 1; i >= 0; i-- {
		l.Add(other.items[i])
	}
	return l
}

// Each calls fn for every element from head to tail without removing them.
func (l *List) Each(fn func(Element)) {
	for i := len(l.items) - 1; i >= 0; i-- {
		fn(l.items[i])
	}
}
