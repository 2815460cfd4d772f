package intstream

// ToSlice drains the stream and returns its elements as a slice, in encounter order.
// An exhausted or empty stream yields an empty, non nil slice.
func (s Stream) ToSlice() []int {
	vs := make([]int, 0)
	for it := s.iterator(); it.Next(); {
		vs = append(vs, it.Value())
	}
	return vs
}
