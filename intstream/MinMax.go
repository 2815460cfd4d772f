package intstream

// Min returns the smallest element of the stream.
// The ok return reports whether the stream had any element at all.
func (s Stream) Min() (_ int, ok bool) {
	return s.Fold(func(left, right int) int {
		if right < left {
			return right
		}
		return left
	})
}

// Max returns the greatest element of the stream.
// The ok return reports whether the stream had any element at all.
func (s Stream) Max() (_ int, ok bool) {
	return s.Fold(func(left, right int) int {
		if left < right {
			return right
		}
		return left
	})
}
