package list

// cursor is the state shared by both iterator kinds. The zero cursor is the
// end sentinel.
type cursor[T any] struct {
	l   *List[T]
	r   ref
	gen uint32
}

func newCursor[T any](l *List[T], r ref) cursor[T] {
	if r == 0 {
		return cursor[T]{}
	}
	return cursor[T]{l: l, r: r, gen: l.node(r).gen}
}

func (c *cursor[T]) node() (*node[T], error) {
	if c.r == 0 {
		return nil, ErrCursorEnd
	}
	n := c.l.node(c.r)
	if !n.used || n.gen != c.gen {
		return nil, ErrStaleCursor
	}
	return n, nil
}

// step moves c to next (or prev if back). No-op on the sentinel or on a
// stale cursor.
func (c *cursor[T]) step(back bool) {
	n, err := c.node()
	if err != nil {
		return
	}
	to := n.next
	if back {
		to = n.prev
	}
	*c = newCursor(c.l, to)
}

func (c *cursor[T]) value() (*T, error) {
	n, err := c.node()
	if err != nil {
		return nil, err
	}
	return &n.data, nil
}

func (c *cursor[T]) valid() bool {
	_, err := c.node()
	return err == nil
}

// Two cursors are equal if they point to the same node or both are the
// end sentinel.
func (c *cursor[T]) equal(o *cursor[T]) bool {
	if c.r == 0 || o.r == 0 {
		return c.r == o.r
	}
	return c.l == o.l && c.r == o.r && c.gen == o.gen
}

// Iterator walks the list from head to tail.
// The zero Iterator is the end sentinel.
type Iterator[T any] struct {
	c cursor[T]
}

// Next advances to the following element.
func (it *Iterator[T]) Next() { it.c.step(false) }

// Prev steps back to the preceding element.
func (it *Iterator[T]) Prev() { it.c.step(true) }

// Value returns a pointer to the current element.
// It returns ErrCursorEnd at the end of the list and ErrStaleCursor if the
// element has been removed.
func (it *Iterator[T]) Value() (*T, error) { return it.c.value() }

// Valid reports whether Value would succeed.
func (it *Iterator[T]) Valid() bool { return it.c.valid() }

// Equal reports whether both iterators point to the same element or both
// are the end sentinel.
func (it *Iterator[T]) Equal(o Iterator[T]) bool { return it.c.equal(&o.c) }

// Begin returns an iterator at the head.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{c: newCursor(l, l.head)}
}

// End returns the end sentinel.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// CursorFrom returns an iterator at the element index steps from the head.
func (l *List[T]) CursorFrom(index int) (Iterator[T], error) {
	if err := l.checkIndex(index, "cursor"); err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{c: newCursor(l, l.walk(index))}, nil
}

// ReverseIterator walks the list from tail to head. Next moves towards the
// head. The zero ReverseIterator is the end sentinel.
type ReverseIterator[T any] struct {
	c cursor[T]
}

// Next advances to the preceding element.
func (it *ReverseIterator[T]) Next() { it.c.step(true) }

// Prev steps back to the following element.
func (it *ReverseIterator[T]) Prev() { it.c.step(false) }

// Value returns a pointer to the current element, see Iterator.Value.
func (it *ReverseIterator[T]) Value() (*T, error) { return it.c.value() }

// Valid reports whether Value would succeed.
func (it *ReverseIterator[T]) Valid() bool { return it.c.valid() }

func (it *ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return it.c.equal(&o.c) }

// RBegin returns a reverse iterator at the tail.
func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{c: newCursor(l, l.tail)}
}

// REnd returns the reverse end sentinel.
func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{}
}

// RCursorFrom returns a reverse iterator at the element index steps from
// the HEAD, not from the tail. RCursorFrom(0) starts at the head, so the
// iterator reaches REnd after one Next.
func (l *List[T]) RCursorFrom(index int) (ReverseIterator[T], error) {
	if err := l.checkIndex(index, "rcursor"); err != nil {
		return ReverseIterator[T]{}, err
	}
	return ReverseIterator[T]{c: newCursor(l, l.walk(index))}, nil
}
