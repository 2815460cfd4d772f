package intstream

// Sum returns the sum of the elements of the stream, zero for an empty stream.
// The addition wraps around on overflow like the int type itself does.
func (s Stream) Sum() int {
	var sum int
	for it := s.iterator(); it.Next(); {
		sum += it.Value()
	}
	return sum
}
