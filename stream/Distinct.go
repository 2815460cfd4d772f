package stream

import (
	"go.llib.dev/frameless/pkg/datastruct"

	"go.llib.dev/streamkit"
)

// Distinct returns a stream with the distinct elements of this stream,
// keeping the first occurrence of each value in the original encounter order.
// Membership is tracked in a set while the elements flow through,
// so the upstream is only consumed as far as the downstream pulls.
func (s Stream[T]) Distinct() Stream[T] {
	return Stream[T]{src: &distinctIter[T]{src: s.iterator()}}
}

type distinctIter[T comparable] struct {
	src   streamkit.Iterator[T]
	seen  datastruct.Set[T]
	value T
}

func (i *distinctIter[T]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if i.seen.Has(v) {
			continue
		}
		i.seen.Add(v)
		i.value = v
		return true
	}
	return false
}

func (i *distinctIter[T]) Value() T {
	return i.value
}
