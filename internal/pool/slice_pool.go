package pool

import (
	"sync"

	"github.com/finchtower/objprop/value"
)

// valueSlicePool pools the []value.Value backing arrays used while
// decoding a dynamic (list) property, released once the list has been
// copied into its final immutable value.Value (spec.md §4.F,
// "deserialize_list" producing Value::List).
var valueSlicePool = sync.Pool{
	New: func() any { return &[]value.Value{} },
}

// GetValueSlice retrieves a []value.Value from the pool, resized to the
// requested length. The caller must invoke the returned cleanup function
// (typically via defer) once the slice's contents have been copied out.
func GetValueSlice(size int) ([]value.Value, func()) {
	ptr, _ := valueSlicePool.Get().(*[]value.Value)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]value.Value, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { valueSlicePool.Put(ptr) }
}
