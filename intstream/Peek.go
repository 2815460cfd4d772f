package intstream

import "go.llib.dev/streamkit"

// Peek returns a stream with the same elements as this stream,
// additionally performing the action on each element as it is pulled through.
// The action runs exactly once per consumed element and never for elements
// a short-circuiting operation left unconsumed, which makes Peek suited
// for observing what actually flows at a given point of the pipeline.
func (s Stream) Peek(action func(int)) Stream {
	if action == nil {
		panic(ErrNilFunc)
	}
	return Stream{src: &peekIter{src: s.iterator(), action: action}}
}

type peekIter struct {
	src    streamkit.Iterator[int]
	action func(int)
}

func (i *peekIter) Next() bool {
	if !i.src.Next() {
		return false
	}
	i.action(i.src.Value())
	return true
}

func (i *peekIter) Value() int {
	return i.src.Value()
}
