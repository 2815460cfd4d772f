package intstream_test

import "go.llib.dev/streamkit"

// pullCounter decorates a source iterator and records how many times it was pulled.
// The count includes the pull that reports the exhaustion.
type pullCounter struct {
	src   streamkit.Iterator[int]
	pulls int
}

func (i *pullCounter) Next() bool {
	i.pulls++
	return i.src.Next()
}

func (i *pullCounter) Value() int {
	return i.src.Value()
}
