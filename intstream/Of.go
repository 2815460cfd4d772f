package intstream

// Of returns a stream whose elements are the given values, in the given order.
func Of(vs ...int) Stream {
	return Stream{src: &sliceIter{vs: vs}}
}

type sliceIter struct {
	vs    []int
	index int
	value int
}

func (i *sliceIter) Next() bool {
	if len(i.vs) <= i.index {
		return false
	}
	i.value = i.vs[i.index]
	i.index++
	return true
}

func (i *sliceIter) Value() int {
	return i.value
}
