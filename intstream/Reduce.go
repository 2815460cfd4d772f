package intstream

// Reduce performs a left fold on the elements of the stream,
// starting out from the identity value and combining with op,
// as in op(op(identity, first), second) and so on.
// An empty stream yields the identity value itself.
func (s Stream) Reduce(identity int, op func(accumulator, value int) int) int {
	if op == nil {
		panic(ErrNilFunc)
	}
	result := identity
	for it := s.iterator(); it.Next(); {
		result = op(result, it.Value())
	}
	return result
}

// Fold performs a left fold without an identity value,
// the first element of the stream seeds the accumulation.
// The ok return reports whether the stream had any element to fold.
func (s Stream) Fold(op func(accumulator, value int) int) (_ int, ok bool) {
	if op == nil {
		panic(ErrNilFunc)
	}
	it := s.iterator()
	if !it.Next() {
		return 0, false
	}
	result := it.Value()
	for it.Next() {
		result = op(result, it.Value())
	}
	return result, true
}
