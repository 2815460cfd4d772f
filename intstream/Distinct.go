package intstream

// Distinct returns a stream with the distinct elements of this stream,
// keeping the first occurrence of each value in the original encounter order.
// The deduplication goes through the generic element stream,
// which tracks the seen values in a set, one element per pull.
func (s Stream) Distinct() Stream {
	return FromIterator(s.Boxed().Distinct().Iterator())
}
