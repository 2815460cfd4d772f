/*
Package stream provides the lazy stream pipeline over generic element values.

It is the element typed counterpart of the intstream package,
sharing the same pull protocol, the same single use semantics
and the same lazy evaluation model.
The element type is constrained to comparable values
so operations like Distinct can rely on value identity.
*/
package stream

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/streamkit"
)

const (
	// ErrNilFunc is the panic value raised when a function argument is nil.
	ErrNilFunc errorkit.Error = "stream: nil function argument"
	// ErrNilIterator is the panic value raised when a source iterator is nil.
	ErrNilIterator errorkit.Error = "stream: nil source iterator"
)

// Stream is a lazy sequence of T values.
// The zero Stream value is a valid empty stream.
// A Stream is single use and not safe for concurrent use.
type Stream[T comparable] struct {
	src streamkit.Iterator[T]
}

// FromIterator returns a stream that adopts the given iterator as its source.
// The stream pulls the iterator lazily, one element per downstream pull.
func FromIterator[T comparable](it streamkit.Iterator[T]) Stream[T] {
	if it == nil {
		panic(ErrNilIterator)
	}
	return Stream[T]{src: it}
}

// Of returns a stream whose elements are the given values, in the given order.
func Of[T comparable](vs ...T) Stream[T] {
	return Stream[T]{src: &sliceIter[T]{vs: vs}}
}

// Iterator exposes the stream as the shared pull protocol,
// to let other pipelines and consumers adopt it without buffering.
func (s Stream[T]) Iterator() streamkit.Iterator[T] {
	return s.iterator()
}

func (s Stream[T]) iterator() streamkit.Iterator[T] {
	if s.src == nil {
		return emptyIter[T]{}
	}
	return s.src
}

// ForEach performs the action on each element of the stream, in encounter order.
// It is a terminal operation, the stream is consumed by the time it returns.
func (s Stream[T]) ForEach(action func(T)) {
	if action == nil {
		panic(ErrNilFunc)
	}
	for it := s.iterator(); it.Next(); {
		action(it.Value())
	}
}

// ToSlice drains the stream and returns its elements as a slice.
// An exhausted or empty stream yields an empty, non nil slice.
func (s Stream[T]) ToSlice() []T {
	vs := make([]T, 0)
	for it := s.iterator(); it.Next(); {
		vs = append(vs, it.Value())
	}
	return vs
}

type emptyIter[T any] struct{}

func (emptyIter[T]) Next() bool { return false }
func (emptyIter[T]) Value() T   { var v T; return v }

type sliceIter[T any] struct {
	vs    []T
	index int
	value T
}

func (i *sliceIter[T]) Next() bool {
	if len(i.vs) <= i.index {
		return false
	}
	i.value = i.vs[i.index]
	i.index++
	return true
}

func (i *sliceIter[T]) Value() T {
	return i.value
}
