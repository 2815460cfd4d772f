package intstream

// Count returns the number of elements in the stream.
// It drains the stream to count them.
func (s Stream) Count() int {
	var total int
	for it := s.iterator(); it.Next(); {
		total++
	}
	return total
}
