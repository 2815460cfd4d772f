package intstream

import "go.llib.dev/streamkit"

// Skip returns a stream that discards the first n elements of this stream.
// When the stream holds fewer than n elements, the result is empty.
// It panics with ErrNegativeSize when n is negative.
// Skip with zero returns the stream itself unchanged.
//
// The discarding is driven by the first downstream pull,
// which consumes the skipped prefix from the upstream in one go.
func (s Stream) Skip(n int) Stream {
	if n < 0 {
		panic(ErrNegativeSize.F("skip(%d)", n))
	}
	if n == 0 {
		return s
	}
	return Stream{src: &skipIter{src: s.iterator(), offset: n}}
}

type skipIter struct {
	src     streamkit.Iterator[int]
	offset  int
	skipped int
}

func (i *skipIter) Next() bool {
	for i.skipped < i.offset {
		if !i.src.Next() {
			return false
		}
		i.skipped++
	}
	return i.src.Next()
}

func (i *skipIter) Value() int {
	return i.src.Value()
}
