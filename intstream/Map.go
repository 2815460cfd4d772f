package intstream

import "go.llib.dev/streamkit"

// Map returns a stream where each element is the result of applying transform
// to the corresponding element of this stream.
// The transform runs exactly once per pulled element.
func (s Stream) Map(transform func(int) int) Stream {
	if transform == nil {
		panic(ErrNilFunc)
	}
	return Stream{src: &mapIter{src: s.iterator(), transform: transform}}
}

type mapIter struct {
	src       streamkit.Iterator[int]
	transform func(int) int
	value     int
}

func (i *mapIter) Next() bool {
	if !i.src.Next() {
		return false
	}
	i.value = i.transform(i.src.Value())
	return true
}

func (i *mapIter) Value() int {
	return i.value
}
