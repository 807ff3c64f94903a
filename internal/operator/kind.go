// Package operator provides the operator node of the graph IR: the kind of
// computation it performs, its typed attributes, its ordered input/output
// tensor links, and its predecessor/successor operator links.
package operator

// Kind enumerates the operator kinds this module understands shape
// inference for. The distilled spec's operator zoo is trimmed to the five
// reference kinds exercised by the optimizer and allocator scenarios;
// SPEC_FULL.md's Registry is open to more without touching this type.
type Kind int

const (
	MatMul Kind = iota
	Transpose
	Concat
	Add
	Relu
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case MatMul:
		return "MatMul"
	case Transpose:
		return "Transpose"
	case Concat:
		return "Concat"
	case Add:
		return "Add"
	case Relu:
		return "Relu"
	default:
		return "Unknown"
	}
}
