package corpus

import "errors"

var (
	ErrTopicOutOfRange = errors.New("corpus: topic index out of range")
	ErrShapeMismatch   = errors.New("corpus: matrix shape mismatch")
	ErrNoTopics        = errors.New("corpus: no topics allocated")
)
