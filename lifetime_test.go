package vector

// ledger counts lifetime events of the test element types below.
type ledger struct {
	live   int // elements constructed by copy and not yet destroyed
	clones int
	moves  int
	budget int // clones allowed before Clone panics; negative means unlimited

	failMove map[int]bool // ids whose Move panics
}

func newLedger() *ledger {
	return &ledger{budget: -1}
}

func (l *ledger) clone() {
	if l.budget == 0 {
		panic("clone budget exhausted")
	}
	if l.budget > 0 {
		l.budget--
	}
	l.clones++
	l.live++
}

// resource is copied with Clone, moved bitwise and destroyed with Destroy.
type resource struct {
	id int
	l  *ledger
}

func (r resource) Clone() resource {
	r.l.clone()
	return resource{id: r.id, l: r.l}
}

func (r *resource) Destroy() {
	r.l.live--
}

// sticky has a Move that may panic, so relocation copies it.
type sticky struct {
	id int
	l  *ledger
}

func (s sticky) Clone() sticky {
	s.l.clone()
	return sticky{id: s.id, l: s.l}
}

func (s *sticky) Move() sticky {
	if s.l.failMove[s.id] {
		panic("move failed")
	}
	s.l.moves++
	return sticky{id: s.id, l: s.l}
}

func (s *sticky) Destroy() {
	s.l.live--
}

// slick has a Move that never panics.
type slick struct {
	id int
	l  *ledger
}

func (s slick) Clone() slick {
	s.l.clone()
	return slick{id: s.id, l: s.l}
}

func (s *slick) Move() slick {
	s.l.moves++
	return slick{id: s.id, l: s.l}
}

func (*slick) NothrowMove() {}

func (s *slick) Destroy() {
	s.l.live--
}

// handle cannot be copied and has a Move that may panic.
type handle struct {
	fd int
	l  *ledger
}

func (h *handle) Move() handle {
	h.l.moves++
	return handle{fd: h.fd, l: h.l}
}

func (*handle) MoveOnly() {}

func (h *handle) Destroy() {
	h.l.live--
}

// node is stored by pointer. Its hooks are defined on *node, which is the
// element type itself.
type node struct {
	id        int
	l         *ledger
	destroyed bool
}

func (n *node) Clone() *node {
	n.l.clone()
	return &node{id: n.id, l: n.l}
}

func (n *node) Destroy() {
	n.l.live--
	n.destroyed = true
}

// buf holds a slice, so its Clone must not share the backing array.
type buf struct {
	b []byte
}

func (x buf) Clone() buf {
	return buf{b: append([]byte(nil), x.b...)}
}

func ids[T interface{ ident() int }](v *Vector[T]) []int {
	out := make([]int, 0, v.Len())
	for x := range v.Values() {
		out = append(out, x.ident())
	}
	return out
}

func (r resource) ident() int { return r.id }
func (s sticky) ident() int   { return s.id }
func (s slick) ident() int    { return s.id }
func (h handle) ident() int   { return h.fd }
func (n *node) ident() int    { return n.id }
