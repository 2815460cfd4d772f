package intstream

import "go.llib.dev/streamkit"

// Concat returns the lazy concatenation of two streams,
// the elements of a followed by the elements of b.
// The second stream is not pulled before the first one is exhausted.
func Concat(a, b Stream) Stream {
	return Stream{src: &concatIter{a: a.iterator(), b: b.iterator()}}
}

type concatIter struct {
	a, b     streamkit.Iterator[int]
	onSecond bool
}

func (i *concatIter) Next() bool {
	if !i.onSecond {
		if i.a.Next() {
			return true
		}
		i.onSecond = true
	}
	return i.b.Next()
}

func (i *concatIter) Value() int {
	if i.onSecond {
		return i.b.Value()
	}
	return i.a.Value()
}
