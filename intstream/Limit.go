package intstream

import "go.llib.dev/streamkit"

// Limit returns a stream truncated to be no longer than n elements.
// It panics with ErrNegativeSize when n is negative.
//
// Once the cap is reached the upstream is not pulled anymore,
// so Limit is safe to bound an infinite stream,
// and it never consumes elements beyond the cap from a shared source.
func (s Stream) Limit(n int) Stream {
	if n < 0 {
		panic(ErrNegativeSize.F("limit(%d)", n))
	}
	return Stream{src: &limitIter{src: s.iterator(), limit: n}}
}

type limitIter struct {
	src   streamkit.Iterator[int]
	limit int
	index int
}

func (i *limitIter) Next() bool {
	if i.limit <= i.index {
		return false
	}
	if !i.src.Next() {
		return false
	}
	i.index++
	return true
}

func (i *limitIter) Value() int {
	return i.src.Value()
}
