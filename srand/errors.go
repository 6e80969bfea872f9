package srand

import "errors"

var (
	// ErrInvalidArgument is carried by the panic raised when a bounded draw
	// is given a non-positive bound or a shuffle a negative length.
	ErrInvalidArgument = errors.New("srand: invalid argument")

	// ErrInvalidParameter is returned when a distribution sampler is
	// constructed with parameters outside its domain.
	ErrInvalidParameter = errors.New("srand: invalid distribution parameter")
)
