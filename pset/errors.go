package pset

import (
	"github.com/denismitr/pset/set"
	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnsupported     = errors.New("unsupported operand")
	ErrNotHashable     = errors.New("unhashable type")
	ErrNotFound        = set.ErrNotFound
)
