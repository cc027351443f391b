package htable

// list backs every indexed collection in the package (cells in a row, rows
// in a section). Elements are append-only: they receive the next free
// index on add and are never reassigned. Removal leaves a gap; surviving
// elements keep their original indices.
//
// Sequential iteration starts at index 0 and stops at the first absent
// index, so a gap truncates iteration even when higher indices are still
// populated. Each list carries a single iteration cursor; two call sites
// iterating the same list at once will interfere.
type list[T any] struct {
	items  map[int]T
	next   int // index the next add receives
	cursor int
}

// add appends v and returns its index.
func (l *list[T]) add(v T) int {
	if l.items == nil {
		l.items = make(map[int]T)
	}
	i := l.next
	l.items[i] = v
	l.next++
	return i
}

// at returns the element at index i if present.
func (l *list[T]) at(i int) (T, bool) {
	v, ok := l.items[i]
	return v, ok
}

// has reports whether index i names a present element.
func (l *list[T]) has(i int) bool {
	_, ok := l.items[i]
	return ok
}

// unset removes the element at index i. Indices above i are untouched;
// a missing index is a no-op.
func (l *list[T]) unset(i int) {
	delete(l.items, i)
}

// count returns the number of currently-present elements.
func (l *list[T]) count() int { return len(l.items) }

// lastIndex returns the highest present index, or -1 when empty. With no
// gaps this is count-1.
func (l *list[T]) lastIndex() int {
	last := -1
	for i := range l.items {
		if i > last {
			last = i
		}
	}
	return last
}

// rewind resets the iteration cursor to index 0.
func (l *list[T]) rewind() { l.cursor = 0 }

// step returns the element under the cursor and advances it. It reports
// false once the cursor reaches an absent index.
func (l *list[T]) step() (T, bool) {
	v, ok := l.items[l.cursor]
	if !ok {
		var zero T
		return zero, false
	}
	l.cursor++
	return v, true
}

// collect returns the elements from index 0 up to the first gap, without
// touching the shared cursor. Rendering uses this so it cannot disturb a
// caller's in-progress iteration.
func (l *list[T]) collect() []T {
	var out []T
	for i := 0; ; i++ {
		v, ok := l.items[i]
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
