package intstream

// First returns the first element of the stream, pulling at most one element.
// The ok return reports whether the stream had any element at all.
func (s Stream) First() (_ int, ok bool) {
	it := s.iterator()
	if !it.Next() {
		return 0, false
	}
	return it.Value(), true
}
