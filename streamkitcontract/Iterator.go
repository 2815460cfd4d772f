package streamkitcontract

import (
	"testing"

	"go.llib.dev/testcase"

	"go.llib.dev/streamkit"
)

// Iterator is the reusable contract of the streamkit pull protocol.
// The constructor must return a fresh iterator on every call,
// and the iterator must yield a finite, deterministic, non empty sequence,
// so independent instances of the same subject can be compared to each other.
type Iterator[V any] func(tb testing.TB) streamkit.Iterator[V]

func (c Iterator[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a pull source", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) streamkit.Iterator[V] {
			return c(t)
		})

		s.Then("values can be pulled from the iterator until it is exhausted", func(t *testcase.T) {
			t.Must.NotEmpty(collect[V](subject.Get(t)))
		})

		s.Then("pulling after the exhaustion keeps reporting the exhaustion", func(t *testcase.T) {
			sub := subject.Get(t)
			for sub.Next() {
			}
			t.Random.Repeat(3, 7, func() {
				t.Must.False(sub.Next())
			})
		})

		s.Then("repeated Value calls yield the same element and advance nothing", func(t *testcase.T) {
			expected := collect[V](c(t))

			var got []V
			for sub := subject.Get(t); sub.Next(); {
				t.Must.Equal(sub.Value(), sub.Value())
				got = append(got, sub.Value())
			}
			t.Must.Equal(expected, got)
		})
	})
}

func (c Iterator[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Iterator[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}

func collect[V any](it streamkit.Iterator[V]) []V {
	var vs []V
	for it.Next() {
		vs = append(vs, it.Value())
	}
	return vs
}
