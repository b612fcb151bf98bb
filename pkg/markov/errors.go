package markov

import "errors"

var (
	// ErrInvalidOrder is returned by Build when the requested chain
	// order is less than 1.
	ErrInvalidOrder = errors.New("markov: order must be at least 1")

	// ErrInsufficientSeed is returned by Generate when the seed holds
	// fewer symbols than the model's order.
	ErrInsufficientSeed = errors.New("markov: seed shorter than model order")

	// ErrEmptyModel is returned by Generate when symbols must be drawn
	// from a model that observed no contexts at all.
	ErrEmptyModel = errors.New("markov: model has no contexts")

	// ErrEmptySequence is returned by Histogram for a zero-length input.
	ErrEmptySequence = errors.New("markov: sequence is empty")
)
