package evaluation

import "errors"

var (
	// ErrNoGraphs is returned by Run when there is nothing to evaluate.
	ErrNoGraphs = errors.New("evaluation: no graphs")

	// ErrNoAlgorithms is returned by Run for an empty algorithm list.
	ErrNoAlgorithms = errors.New("evaluation: no algorithms")

	// ErrInvalidRepeat is returned when repeat < 1.
	ErrInvalidRepeat = errors.New("evaluation: repeat must be at least 1")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("evaluation: invalid config")
)
