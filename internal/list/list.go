// Package list implements an index addressable doubly linked list.
//
// Nodes are kept in an arena owned by the List and linked by slot references.
// Inserting or removing at index 0 is O(1), every other position costs
// O(index). Cursors remember the generation of the node they point to, so
// using a cursor after its node was removed is reported as ErrStaleCursor.
//
// A List is not safe for concurrent use.
package list

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// List is a doubly linked list of T. The zero value is an empty list ready
// to use. Use Clone to copy a List.
type List[T any] struct {
	noCopy noCopy

	a          arena[T]
	head, tail ref
	l          int
}

func New[T any]() *List[T] {
	return new(List[T])
}

func (l *List[T]) Len() int { return l.l }

func (l *List[T]) node(r ref) *node[T] {
	return l.a.get(r)
}

// walk follows next links steps times from the head.
// Returns 0 if the walk runs off the end.
func (l *List[T]) walk(steps int) ref {
	r := l.head
	for i := 0; r != 0 && i < steps; i++ {
		r = l.node(r).next
	}
	return r
}

// Insert inserts a copy of v at index. Valid indexes are [0, Len()],
// Len() appends v at the tail.
func (l *List[T]) Insert(v T, index int) error {
	if index < 0 || index > l.l {
		return newIndexErr("insert", index, l.l)
	}
	r := l.a.alloc()
	l.node(r).data = v
	l.insertAt(r, index)
	return nil
}

// Emplace moves *v into a new node at index. On success *v is reset to
// its zero value. On failure *v is left untouched.
func (l *List[T]) Emplace(v *T, index int) error {
	if index < 0 || index > l.l {
		return newIndexErr("emplace", index, l.l)
	}
	r := l.a.alloc()
	n := l.node(r)
	n.data = *v
	var zero T
	*v = zero
	l.insertAt(r, index)
	return nil
}

// insertAt links the unlinked node r in at index. index MUST be in [0, l.l].
func (l *List[T]) insertAt(r ref, index int) {
	n := l.node(r)
	if index == 0 {
		n.next = l.head
		if l.head != 0 {
			l.node(l.head).prev = r
		}
		l.head = r
		if l.tail == 0 {
			l.tail = r
		}
		l.l++
		return
	}

	before := l.walk(index - 1)
	at := l.node(before)
	n.prev = before
	n.next = at.next
	if at.next != 0 {
		l.node(at.next).prev = r
	} else {
		l.tail = r
	}
	at.next = r
	l.l++
}

// Remove destroys the element at index. Valid indexes are [0, Len()).
func (l *List[T]) Remove(index int) error {
	if err := l.checkIndex(index, "remove"); err != nil {
		return err
	}
	l.a.release(l.unlink(index))
	return nil
}

// Take removes the element at index and returns it.
func (l *List[T]) Take(index int) (T, error) {
	if err := l.checkIndex(index, "take"); err != nil {
		var zero T
		return zero, err
	}
	return l.a.release(l.unlink(index)), nil
}

// checkIndex validates an index of an existing element. Because the chain
// always holds exactly l.l nodes, a walk to a valid index never runs off.
func (l *List[T]) checkIndex(index int, op string) error {
	if index < 0 || index >= l.l {
		return newIndexErr(op, index, l.l)
	}
	return nil
}

// unlink detaches the node at index from the chain without releasing it.
// index MUST be in [0, l.l).
func (l *List[T]) unlink(index int) ref {
	if index == 0 {
		old := l.head
		l.head = l.node(old).next
		if l.head != 0 {
			l.node(l.head).prev = 0
		} else {
			l.tail = 0
		}
		l.l--
		return old
	}

	before := l.walk(index - 1)
	target := l.node(before).next
	after := l.node(target).next
	if after != 0 {
		l.node(after).prev = before
	} else {
		l.tail = before
	}
	l.node(before).next = after
	l.l--
	return target
}

// At returns a pointer to the element at index. The pointer stays valid
// until that element is removed. Unlike cursors, a pointer kept after the
// removal is not detected: it aliases whatever element reuses the slot.
func (l *List[T]) At(index int) (*T, error) {
	if err := l.checkIndex(index, "at"); err != nil {
		return nil, err
	}
	return &l.node(l.walk(index)).data, nil
}

// Clear destroys all elements. Every cursor obtained before becomes stale.
//
// Clear does not shrink memory: the arena keeps its chunks so slot
// generations never restart and old cursors stay detectably stale.
// Drop the List to give the memory back.
func (l *List[T]) Clear() {
	r := l.head
	for r != 0 {
		next := l.node(r).next
		l.a.release(r)
		r = next
	}
	l.head, l.tail = 0, 0
	l.l = 0
}

// Clone returns a deep copy of l. Cursors of l are not valid on the copy.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		a:    l.a.clone(),
		head: l.head,
		tail: l.tail,
		l:    l.l,
	}
}

// live reports whether r still holds the node of generation gen.
func (l *List[T]) live(r ref, gen uint32) bool {
	n := l.node(r)
	return n.used && n.gen == gen
}

// Iterate calls fn for each element from head to tail. fn may remove the
// element it is given. If fn returns false, or fn removed the element that
// would be visited next, the iteration stops and Iterate returns false.
func (l *List[T]) Iterate(fn func(v *T) bool) bool {
	for r := l.head; r != 0; {
		n := l.node(r)
		next := n.next
		var nextGen uint32
		if next != 0 {
			nextGen = l.node(next).gen
		}
		if !fn(&n.data) {
			return false
		}
		if next != 0 && !l.live(next, nextGen) {
			return false
		}
		r = next
	}
	return true
}

// ReverseIterate is like Iterate but goes from tail to head.
func (l *List[T]) ReverseIterate(fn func(v *T) bool) bool {
	for r := l.tail; r != 0; {
		n := l.node(r)
		prev := n.prev
		var prevGen uint32
		if prev != 0 {
			prevGen = l.node(prev).gen
		}
		if !fn(&n.data) {
			return false
		}
		if prev != 0 && !l.live(prev, prevGen) {
			return false
		}
		r = prev
	}
	return true
}

// Values returns a copy of all elements in head to tail order.
func (l *List[T]) Values() []T {
	s := make([]T, 0, l.l)
	l.Iterate(func(v *T) bool {
		s = append(s, *v)
		return true
	})
	return s
}
