package intstream

// AnyMatch reports whether any element of the stream matches the predicate.
// It short-circuits, no further element is pulled after the first match.
// On an empty stream it reports false.
func (s Stream) AnyMatch(predicate func(int) bool) bool {
	if predicate == nil {
		panic(ErrNilFunc)
	}
	for it := s.iterator(); it.Next(); {
		if predicate(it.Value()) {
			return true
		}
	}
	return false
}

// AllMatch reports whether every element of the stream matches the predicate.
// It short-circuits, no further element is pulled after the first mismatch.
// On an empty stream it reports true.
func (s Stream) AllMatch(predicate func(int) bool) bool {
	if predicate == nil {
		panic(ErrNilFunc)
	}
	for it := s.iterator(); it.Next(); {
		if !predicate(it.Value()) {
			return false
		}
	}
	return true
}

// NoneMatch reports whether no element of the stream matches the predicate.
// It short-circuits, no further element is pulled after the first match.
// On an empty stream it reports true.
func (s Stream) NoneMatch(predicate func(int) bool) bool {
	if predicate == nil {
		panic(ErrNilFunc)
	}
	return !s.AnyMatch(predicate)
}
