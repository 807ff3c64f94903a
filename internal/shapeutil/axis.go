package shapeutil

import "fmt"

// NormalizeAxis resolves a possibly-negative axis against rank, returning
// the equivalent non-negative axis. axis must lie in [-rank, rank-1].
// Ported from get_real_axis in operator_utils.cc.
func NormalizeAxis(axis, rank int) (int, error) {
	if rank < 1 {
		return 0, fmt.Errorf("shapeutil: rank must be >= 1, got %d", rank)
	}
	if axis < -rank || axis > rank-1 {
		return 0, fmt.Errorf("shapeutil: axis %d out of range for rank %d", axis, rank)
	}
	if axis < 0 {
		return rank + axis, nil
	}
	return axis, nil
}
