package sstable

import "errors"

var (
	ErrIndexOutOfRange = errors.New("sstable: index out of range")
	ErrBadShape        = errors.New("sstable: non-positive dimension not allowed")
	ErrCorrupted       = errors.New("sstable: model corrupted")
)
