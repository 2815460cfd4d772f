package intstream_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/streamkit/intstream"
)

func TestGenerate(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it yields whatever the supplier produces", func(t *testcase.T) {
		var n int
		subject := intstream.Generate(func() int {
			n++
			return n
		})
		t.Must.Equal([]int{1, 2, 3, 4}, subject.Limit(4).ToSlice())
	})

	s.Test("the supplier runs once per pulled element and only on pulling", func(t *testcase.T) {
		var calls int
		subject := intstream.Generate(func() int {
			calls++
			return calls
		})
		t.Must.Equal(0, calls)

		it := subject.Iterator()
		t.Must.Equal(0, calls)

		n := t.Random.IntB(3, 7)
		for i := 0; i < n; i++ {
			t.Must.True(it.Next())
		}
		t.Must.Equal(n, calls)
	})

	s.Test("a short-circuiting terminal operation bounds the infinite stream", func(t *testcase.T) {
		var calls int
		subject := intstream.Generate(func() int {
			calls++
			return calls
		})
		v, ok := subject.First()
		t.Must.True(ok)
		t.Must.Equal(1, v)
		t.Must.Equal(1, calls)
	})

	s.Test("on a nil supplier it panics", func(t *testcase.T) {
		got := assert.Panic(t, func() { intstream.Generate(nil) })
		t.Must.Equal(intstream.ErrNilFunc, got)
	})
}
