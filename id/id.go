package id

import (
	"strconv"
	"sync/atomic"
)

// ID identifies objects and error classes for the lifetime of the process.
type ID uint64

var current atomic.Uint64

func Next() ID {
	return ID(current.Add(1))
}

func (i ID) String() string {
	return "#" + strconv.FormatUint(uint64(i), 10)
}
