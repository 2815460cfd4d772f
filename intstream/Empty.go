package intstream

// Empty returns a stream with no elements.
// It is used to represent the lack of values with the Null object pattern.
func Empty() Stream {
	return Stream{src: emptyIter{}}
}

type emptyIter struct{}

func (emptyIter) Next() bool { return false }
func (emptyIter) Value() int { return 0 }
