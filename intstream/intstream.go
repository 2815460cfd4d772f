/*
Package intstream provides a lazy, composable stream pipeline over primitive int values.

A pipeline is composed from a source stream such as Range or Generate,
any number of intermediate operations such as Filter, Map or Limit,
and exactly one terminal operation such as ToSlice, Reduce or AnyMatch.
Intermediate operations only describe computation,
the elements start to flow when the terminal operation pulls them,
and every element flows through the whole pipeline one at a time.

A Stream value is single use.
A terminal operation consumes the stream,
and after that the stream stays permanently exhausted.
The zero Stream value is a valid empty stream.

A panic raised by a user supplied function propagates unmodified
to the caller of the terminal operation that was driving the pipeline.

Streams are not safe for concurrent use.
*/
package intstream

import "go.llib.dev/streamkit"

// Stream is a lazy sequence of int values.
//
// Stream has value semantics for the pipeline description,
// but the traversal state lives in the underlying source,
// so copies of a Stream share their consumption.
type Stream struct {
	src streamkit.Iterator[int]
}

// FromIterator returns a stream that adopts the given iterator as its source.
// The stream pulls the iterator lazily, one element per downstream pull.
func FromIterator(it streamkit.Iterator[int]) Stream {
	if it == nil {
		panic(ErrNilIterator)
	}
	return Stream{src: it}
}

// Iterator exposes the stream as the shared pull protocol,
// to let other pipelines and consumers adopt it without buffering.
func (s Stream) Iterator() streamkit.Iterator[int] {
	return s.iterator()
}

func (s Stream) iterator() streamkit.Iterator[int] {
	if s.src == nil {
		return emptyIter{}
	}
	return s.src
}
