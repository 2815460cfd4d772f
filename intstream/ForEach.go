package intstream

// ForEach performs the action on each element of the stream, in encounter order.
// It is a terminal operation, the stream is consumed by the time it returns.
func (s Stream) ForEach(action func(int)) {
	if action == nil {
		panic(ErrNilFunc)
	}
	for it := s.iterator(); it.Next(); {
		action(it.Value())
	}
}
