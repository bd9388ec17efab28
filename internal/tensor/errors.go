package tensor

import "errors"

// Contract-violation errors. Each is wrapped with the offending indices and
// expected dimensions at the call site; match with errors.Is.
var (
	// ErrInvalidMultiIndex reports a component key whose multi-index does not
	// fit the tensor's declared type and basis dimension. Raised at
	// construction; no tensor is produced.
	ErrInvalidMultiIndex = errors.New("multi-index inconsistent with tensor type")

	// ErrBadIndexPair reports a component lookup whose (normalized) index
	// pair is not valid for the tensor's type. Distinct from a valid pair
	// with no stored entry, which reads as zero.
	ErrBadIndexPair = errors.New("invalid multi-index pair for lookup")

	// ErrTypeMismatch reports an operation over tensors that differ in basis
	// or (p,q) type.
	ErrTypeMismatch = errors.New("tensors differ in basis or type")

	// ErrNotContractible reports a contraction on a tensor with no
	// contravariant or no covariant slot to contract.
	ErrNotContractible = errors.New("rank too low to contract")

	// ErrSlotRange reports a contraction slot outside the tensor's rank.
	ErrSlotRange = errors.New("contraction slot out of range")

	// ErrBadMatrix reports a matrix that is not square over the given basis.
	ErrBadMatrix = errors.New("matrix is not square over the basis")
)
