// Package matrix provides the fixed-dimension N×N value type shared by every
// stage of the golden model.
//
// The matrix package provides:
//
//   - Square[T], a row-major N×N grid over bounded integers or floats, with
//     bounds-checked At/Set, Clone and Rows views.
//   - Element-wise kernels (Map), the range finder used by calibration
//     (Range) and the hardware stream order (StreamOrder).
//   - Shape validators returning wrapped sentinel errors.
//
// Row-major storage is part of the contract: StreamOrder(m)[i*N+j] == m[i,j].
//
// See the examples in this package for usage patterns.
package matrix
