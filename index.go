package sparsekernel

import "math"

// Index is a row or column position. It is a plain int, not a fixed-width
// unsigned type: the library never needs more range than the platform int,
// and a signed type lets internal code use -1 as a not-found sentinel.
type Index = int

// IndexMax is the largest representable Index.
const IndexMax = math.MaxInt
