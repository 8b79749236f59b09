package evaluator

import "errors"

var (
	ErrTerminated     = errors.New("evaluation context has been terminated")
	ErrFactoryMissing = errors.New("evaluation factory was not provided")
)
