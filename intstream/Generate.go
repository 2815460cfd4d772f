package intstream

// Generate returns an infinite stream where each element is produced by the supplier function.
// The supplier runs once per pulled element, at the moment of the pull,
// so a stateful supplier observes exactly the consumed prefix.
// Bound the stream with Limit or a short-circuiting terminal operation.
func Generate(supplier func() int) Stream {
	if supplier == nil {
		panic(ErrNilFunc)
	}
	return Stream{src: &generateIter{supplier: supplier}}
}

type generateIter struct {
	supplier func() int
	value    int
}

func (i *generateIter) Next() bool {
	i.value = i.supplier()
	return true
}

func (i *generateIter) Value() int {
	return i.value
}
