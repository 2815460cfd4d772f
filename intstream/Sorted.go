package intstream

import (
	"sort"

	"go.llib.dev/frameless/pkg/lazyload"
)

// Sorted returns a stream with the elements of this stream in ascending order.
//
// Sorted has to know every element before it can yield the smallest one,
// so the upstream is drained and sorted on the first pull.
// The draining happens exactly once, and not at construction time,
// which keeps building the pipeline cheap.
// On an infinite stream the first pull will not return.
func (s Stream) Sorted() Stream {
	src := s.iterator()
	return Stream{src: &sortedIter{load: lazyload.Make(func() []int {
		vs := make([]int, 0)
		for src.Next() {
			vs = append(vs, src.Value())
		}
		sort.Ints(vs)
		return vs
	})}}
}

type sortedIter struct {
	load  func() []int
	index int
	value int
}

func (i *sortedIter) Next() bool {
	vs := i.load()
	if len(vs) <= i.index {
		return false
	}
	i.value = vs[i.index]
	i.index++
	return true
}

func (i *sortedIter) Value() int {
	return i.value
}
