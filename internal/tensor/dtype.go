// Package tensor provides the core tensor value type of the graph IR: shape,
// element type, identity, and the storage binding assigned once the
// allocator has planned the arena.
package tensor

// DType is the enumerated element type of a tensor. Float32 is the zero
// value and therefore the default for a tensor created without an explicit
// dtype, per the data model.
type DType int

// Supported element types.
const (
	Float32 DType = iota
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of a single element of this type.
func (d DType) Size() uint64 {
	switch d {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		panic("tensor: unknown dtype")
	}
}

// String returns a human-readable name for the dtype.
func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}
