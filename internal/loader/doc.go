// Package loader reads declarative YAML definitions of metrics and sparse
// tensors over the symbolic scalar ring.
//
// Two document shapes are supported. A metric document carries a basis and a
// square matrix of expression strings:
//
//	basis: [dt, dr]
//	matrix:
//	  - ["-(1 - rs/r)", "0"]
//	  - ["0", "1/(1 - rs/r)"]
//
// A tensor document carries a basis, a (contra, cova) type and a sparse
// component list; omitted components are zero:
//
//	basis: [e0, e1]
//	type: {contra: 1, cova: 1}
//	components:
//	  - {contra: [0], cova: [0], value: "3"}
//	  - {contra: [1], cova: [1], value: "5"}
//
// Component values are parsed with the symbolic expression grammar;
// multi-index validation is the tensor package's, surfaced unchanged.
package loader
