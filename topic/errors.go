package topic

import "errors"

var (
	ErrUninitializedModel = errors.New("topic: model not set")
	ErrInvalidModel       = errors.New("topic: invalid model vector")
	ErrIndexOutOfRange    = errors.New("topic: word index out of range")
)
