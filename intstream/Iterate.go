package intstream

// Iterate returns an infinite stream made by the iterative application of fn to a seed value,
// yielding seed, fn(seed), fn(fn(seed)) and so on.
// The successor of an element is computed when the element itself is pulled.
// Bound the stream with Limit or a short-circuiting terminal operation.
func Iterate(seed int, fn func(int) int) Stream {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return Stream{src: &iterateIter{next: seed, fn: fn}}
}

type iterateIter struct {
	fn    func(int) int
	next  int
	value int
}

func (i *iterateIter) Next() bool {
	i.value = i.next
	i.next = i.fn(i.next)
	return true
}

func (i *iterateIter) Value() int {
	return i.value
}
