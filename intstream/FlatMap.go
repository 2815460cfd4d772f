package intstream

import "go.llib.dev/streamkit"

// FlatMap returns a stream with the elements of the streams
// that mapper produces for each element of this stream, in order.
// Empty sub-streams are skipped transparently,
// and the zero Stream value is accepted as an empty result.
func (s Stream) FlatMap(mapper func(int) Stream) Stream {
	if mapper == nil {
		panic(ErrNilFunc)
	}
	return Stream{src: &flatMapIter{src: s.iterator(), mapper: mapper}}
}

type flatMapIter struct {
	src    streamkit.Iterator[int]
	mapper func(int) Stream
	inner  streamkit.Iterator[int]
	value  int
}

func (i *flatMapIter) Next() bool {
	if i.inner != nil && i.inner.Next() {
		i.value = i.inner.Value()
		return true
	}
	for i.src.Next() {
		inner := i.mapper(i.src.Value()).iterator()
		if inner.Next() {
			i.inner = inner
			i.value = inner.Value()
			return true
		}
	}
	return false
}

func (i *flatMapIter) Value() int {
	return i.value
}
