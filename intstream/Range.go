package intstream

import "go.llib.dev/frameless/pkg/mathkit"

// Range returns a stream of the integers from begin (inclusive) to end (exclusive),
// increasing by a step of one.
// When end is not greater than begin, an empty stream is returned.
func Range(begin, end int) Stream {
	if end <= begin {
		return Empty()
	}
	return Stream{src: &rangeIter{current: begin, end: end}}
}

// RangeClosed returns a stream of the integers from begin to end, both inclusive.
// When end is smaller than begin, an empty stream is returned.
//
// The upper boundary may be the greatest int value,
// in that case the last element is emitted through concatenation
// instead of letting the exclusive endpoint of Range wrap around.
func RangeClosed(begin, end int) Stream {
	if end < begin {
		return Empty()
	}
	if mathkit.CanIntSumOverflow(end, 1) {
		return Concat(Range(begin, end), Of(end))
	}
	return Range(begin, end+1)
}

type rangeIter struct {
	current int
	end     int
	value   int
}

func (i *rangeIter) Next() bool {
	if i.end <= i.current {
		return false
	}
	i.value = i.current
	i.current++
	return true
}

func (i *rangeIter) Value() int {
	return i.value
}
