package ir

import "errors"

var (
	// ErrInvalidLimits is returned when a memory or table maximum is
	// smaller than its initial size.
	ErrInvalidLimits = errors.New("initial size must not be greater than maximum")
	// ErrSealedBlock is returned when sealing an already sealed basic block
	// or adding a predecessor to one.
	ErrSealedBlock = errors.New("basic block already sealed")
	// ErrConstOutOfRange is returned when an integer constant value does
	// not fit its declared type.
	ErrConstOutOfRange = errors.New("constant out of range")
)
