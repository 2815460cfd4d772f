package intstream_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/streamkit"
	"go.llib.dev/streamkit/intstream"
	"go.llib.dev/streamkit/streamkitcontract"
)

func TestConcat_smoke(t *testing.T) {
	it := assert.Must(t)
	subject := intstream.Concat(intstream.Of(1, 2), intstream.Of(3, 4))
	it.Equal([]int{1, 2, 3, 4}, subject.ToSlice())
}

func TestConcat(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		first = testcase.Let(s, func(t *testcase.T) intstream.Stream {
			return intstream.Of(1, 2, 3)
		})
		second = testcase.Let(s, func(t *testcase.T) intstream.Stream {
			return intstream.Of(4, 5)
		})
	)
	subject := testcase.Let(s, func(t *testcase.T) intstream.Stream {
		return intstream.Concat(first.Get(t), second.Get(t))
	})

	s.Then("it yields the elements of the first stream then the second one", func(t *testcase.T) {
		t.Must.Equal([]int{1, 2, 3, 4, 5}, subject.Get(t).ToSlice())
	})

	s.Then("the second stream is left untouched until the first one is exhausted", func(t *testcase.T) {
		counter := &pullCounter{src: intstream.Of(4, 5).Iterator()}
		second.Set(t, intstream.FromIterator(counter))

		it := subject.Get(t).Iterator()
		t.Must.True(it.Next())
		t.Must.True(it.Next())
		t.Must.True(it.Next())
		t.Must.Equal(0, counter.pulls)

		t.Must.True(it.Next())
		t.Must.Equal(4, it.Value())
	})

	s.When("the first stream is empty", func(s *testcase.Spec) {
		first.Let(s, func(t *testcase.T) intstream.Stream {
			return intstream.Empty()
		})

		s.Then("only the second stream's elements are yielded", func(t *testcase.T) {
			t.Must.Equal([]int{4, 5}, subject.Get(t).ToSlice())
		})
	})

	s.When("the second stream is empty", func(s *testcase.Spec) {
		second.Let(s, func(t *testcase.T) intstream.Stream {
			return intstream.Empty()
		})

		s.Then("only the first stream's elements are yielded", func(t *testcase.T) {
			t.Must.Equal([]int{1, 2, 3}, subject.Get(t).ToSlice())
		})
	})

	s.When("both streams are empty", func(s *testcase.Spec) {
		first.Let(s, func(t *testcase.T) intstream.Stream {
			return intstream.Empty()
		})
		second.Let(s, func(t *testcase.T) intstream.Stream {
			return intstream.Empty()
		})

		s.Then("the result is empty as well", func(t *testcase.T) {
			t.Must.Empty(subject.Get(t).ToSlice())
		})
	})
}

func TestConcat_implementsIterator(t *testing.T) {
	streamkitcontract.Iterator[int](func(tb testing.TB) streamkit.Iterator[int] {
		return intstream.Concat(intstream.Of(1, 2, 3), intstream.Of(4, 5)).Iterator()
	}).Test(t)
}
