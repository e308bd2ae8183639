package torus

import (
	"fmt"
)

// MaxReadSize bounds each length read from a serialized stream (dimensions, degrees
// and element counts) as well as the number of torus elements allocated at once
// from such lengths, before the corresponding data has been read.
const MaxReadSize = 1 << 20

// CheckReadSize returns an error if size, read from a serialized stream, is negative
// or larger than [MaxReadSize].
func CheckReadSize(size int) error {
	if size < 0 || size > MaxReadSize {
		return fmt.Errorf("invalid serialized size %d: must be in [0, %d]", size, MaxReadSize)
	}
	return nil
}
