package intstream

import "go.llib.dev/streamkit"

// Filter returns a stream with the elements of this stream that match the predicate.
// The predicate runs once per upstream element, while the downstream pull looks ahead
// until a matching element is found or the upstream is exhausted.
func (s Stream) Filter(predicate func(int) bool) Stream {
	if predicate == nil {
		panic(ErrNilFunc)
	}
	return Stream{src: &filterIter{src: s.iterator(), predicate: predicate}}
}

// FilterNot returns a stream with the elements of this stream that do not match the predicate.
// It is the complement of Filter.
func (s Stream) FilterNot(predicate func(int) bool) Stream {
	if predicate == nil {
		panic(ErrNilFunc)
	}
	return s.Filter(func(v int) bool { return !predicate(v) })
}

type filterIter struct {
	src       streamkit.Iterator[int]
	predicate func(int) bool
	value     int
}

func (i *filterIter) Next() bool {
	for i.src.Next() {
		if v := i.src.Value(); i.predicate(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *filterIter) Value() int {
	return i.value
}
