package hashindex

import "github.com/gostonefire/hashindex/internal/utils"

// EqualUnique - Returns true if a and b hold the same elements, assuming both were filled with unique key inserts.
// Elements are matched by key and then compared with eq.
func EqualUnique[K any, E any](a, b *Index[K, E], eq func(x, y E) bool) bool {
	if a.size != b.size {
		return false
	}

	for e := range a.All() {
		other, ok := b.Get(a.key(e))
		if !ok || !eq(e, other) {
			return false
		}
	}

	return true
}

// EqualMulti - Returns true if a and b hold the same multiset of elements. For every run of equal keys in a, the run
// of the same key in b must have the same length and be a permutation of it under eq.
func EqualMulti[K any, E any](a, b *Index[K, E], eq func(x, y E) bool) bool {
	if a.size != b.size {
		return false
	}

	for f := a.Begin(); !f.End(); {
		key := f.Key()
		first1, last1 := a.EqualRangeMulti(key)
		first2, last2 := b.EqualRangeMulti(key)

		if !utils.IsPermutation(collect(first1, last1), collect(first2, last2), eq) {
			return false
		}
		f = last1
	}

	return true
}

// collect - Returns the elements in [first, last)
func collect[K any, E any](first, last Cursor[K, E]) (elements []E) {
	for c := first; !c.Equal(last); c = c.Next() {
		elements = append(elements, c.Value())
	}

	return
}
