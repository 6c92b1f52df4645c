// SPDX-License-Identifier: MIT

package field

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Field is the scalar constraint used by vector and matrix.
type Field interface {
	~int8 | ~int16 | ~int32 | constraints.Float
}

// FormatPrecision is the number of decimals used when rendering
// floating-point scalars.
const FormatPrecision = 3

// Zero returns the additive identity of K.
func Zero[K Field]() K {
	var z K

	return z
}

// One returns the multiplicative identity of K.
func One[K Field]() K { return 1 }

// Abs returns |x|. For the most negative integer of a signed type the
// result wraps, as in plain Go arithmetic; callers that compare magnitudes
// should widen first with math.Abs(Float64(x)).
func Abs[K Field](x K) K {
	if x < 0 {
		return -x
	}

	return x
}

// IsZero reports whether x equals the additive identity.
func IsZero[K Field](x K) bool { return x == 0 }

// Float64 widens x to float64. The conversion is exact for every type in Field.
func Float64[K Field](x K) float64 { return float64(x) }

// IsInteger reports whether K truncates division, i.e. is an integer type.
func IsInteger[K Field]() bool {
	return K(1)/2 == 0
}

// Format renders x the way vectors and matrices print their elements:
// integers in plain decimal, floats with FormatPrecision decimals.
// A float that rounds to zero prints without a sign.
func Format[K Field](x K) string {
	if IsInteger[K]() {
		return strconv.FormatInt(int64(x), 10)
	}
	s := strconv.FormatFloat(float64(x), 'f', FormatPrecision, 64)
	if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}

	return s
}
