package intstream

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrNegativeSize is the panic value raised when an element count argument is negative.
	ErrNegativeSize errorkit.Error = "intstream: negative element count"
	// ErrNilFunc is the panic value raised when a function argument is nil.
	ErrNilFunc errorkit.Error = "intstream: nil function argument"
	// ErrNilIterator is the panic value raised when a source iterator is nil.
	ErrNilIterator errorkit.Error = "intstream: nil source iterator"
)
