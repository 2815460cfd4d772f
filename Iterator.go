package streamkit

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next returns false,
	// and it keeps returning false on every further call.
	// A single Next call advances the traversal by exactly one element.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	// Calling Value before the first Next call yielded true is undefined.
	Value() V
}
