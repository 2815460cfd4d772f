package intstream

import "go.llib.dev/streamkit/stream"

// Boxed lifts this stream into the generic element stream.
// Both pipelines speak the same pull protocol,
// so the underlying source is adopted directly,
// one element per pull and without intermediate buffering.
func (s Stream) Boxed() stream.Stream[int] {
	return stream.FromIterator(s.iterator())
}
