package list

const (
	chunkBits = 6
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1
)

// ref addresses a node slot in the arena. Slot i is stored as ref(i+1) so that
// the zero ref means "no node" and a zero List is ready to use.
type ref int

type node[T any] struct {
	data       T
	next, prev ref

	// gen is bumped every time the slot is released. A handle is only
	// valid while its recorded gen matches.
	gen  uint32
	used bool
}

// clone duplicates data and raw links. The caller fixes link semantics.
func (n *node[T]) clone() node[T] {
	return *n
}

// take moves the data out and clears the links.
func (n *node[T]) take() T {
	v := n.data
	var zero T
	n.data = zero
	n.next, n.prev = 0, 0
	return v
}

// arena owns every node slot of a List. Chunks are fixed size and never
// reallocated, so pointers into them stay put.
type arena[T any] struct {
	chunks [][]node[T]
	hwm    int // slots handed out from the chunks so far
	free   ref // released slots, threaded through node.next
}

func (a *arena[T]) get(r ref) *node[T] {
	i := int(r) - 1
	return &a.chunks[i>>chunkBits][i&chunkMask]
}

func (a *arena[T]) alloc() ref {
	var r ref
	if a.free != 0 {
		r = a.free
		a.free = a.get(r).next
	} else {
		if a.hwm == len(a.chunks)*chunkSize {
			a.chunks = append(a.chunks, make([]node[T], chunkSize))
		}
		a.hwm++
		r = ref(a.hwm)
	}
	n := a.get(r)
	n.next, n.prev = 0, 0
	n.used = true
	return r
}

// release destroys the node at r and returns its element.
// r MUST NOT be linked into the chain anymore.
func (a *arena[T]) release(r ref) T {
	n := a.get(r)
	v := n.take()
	n.used = false
	n.gen++
	n.next = a.free
	a.free = r
	return v
}

func (a *arena[T]) clone() arena[T] {
	c := arena[T]{
		chunks: make([][]node[T], len(a.chunks)),
		hwm:    a.hwm,
		free:   a.free,
	}
	for i, src := range a.chunks {
		dst := make([]node[T], chunkSize)
		for j := range src {
			dst[j] = src[j].clone()
		}
		c.chunks[i] = dst
	}
	return c
}
