package math

import (
	"github.com/filecoin-project/go-state-types/big"
)

// Fixed-point fractions used by the reward split. All operations are
// integer-only and deterministic across nodes; balances never pass through
// floating point.

// Percent is a fraction in hundredths, saturating at one.
type Percent uint64

// Perbill is a fraction in parts-per-billion, saturating at one.
type Perbill uint64

const (
	PercentOne = Percent(100)
	PerbillOne = Perbill(1_000_000_000)
)

// Rounding mode for fraction division.
type Rounding int

const (
	// Truncate toward zero.
	RoundDown Rounding = iota
	// Round to the nearest representable value, ties toward zero.
	RoundNearestPrefDown
)

// FromPercent builds a Percent, saturating values above 100.
func FromPercent(p uint64) Percent {
	if p > uint64(PercentOne) {
		return PercentOne
	}
	return Percent(p)
}

func (p Percent) IsValid() bool {
	return p <= PercentOne
}

func (p Percent) IsZero() bool {
	return p == 0
}

// Perbill widens a Percent to parts-per-billion.
func (p Percent) Perbill() Perbill {
	if p > PercentOne {
		p = PercentOne
	}
	return Perbill(uint64(p) * 10_000_000)
}

// Mul multiplies an amount by the fraction, truncating.
func (p Percent) Mul(x big.Int) big.Int {
	return big.Div(big.Mul(x, big.NewIntUnsigned(uint64(p))), big.NewIntUnsigned(uint64(PercentOne)))
}

// Mul multiplies an amount by the fraction, truncating.
func (p Perbill) Mul(x big.Int) big.Int {
	return big.Div(big.Mul(x, big.NewIntUnsigned(uint64(p))), big.NewIntUnsigned(uint64(PerbillOne)))
}

func (p Perbill) IsZero() bool {
	return p == 0
}

// SaturatingSub subtracts another fraction, stopping at zero.
func (p Perbill) SaturatingSub(o Perbill) Perbill {
	if o >= p {
		return 0
	}
	return p - o
}

// PerbillFromRational approximates n/d as a Perbill, rounding down and
// saturating at one. A zero denominator saturates.
func PerbillFromRational(n, d uint64) Perbill {
	if d == 0 || n >= d {
		return PerbillOne
	}
	q := big.Div(
		big.Mul(big.NewIntUnsigned(n), big.NewIntUnsigned(uint64(PerbillOne))),
		big.NewIntUnsigned(d),
	)
	return Perbill(q.Uint64())
}

// DivPerbill divides one fraction by another under the given rounding mode,
// saturating at one. A zero divisor saturates.
func DivPerbill(a, b Perbill, r Rounding) Perbill {
	if b == 0 || a >= b {
		return PerbillOne
	}
	num := big.Mul(big.NewIntUnsigned(uint64(a)), big.NewIntUnsigned(uint64(PerbillOne)))
	den := big.NewIntUnsigned(uint64(b))
	q := big.Div(num, den)
	if r == RoundNearestPrefDown {
		rem := big.Mod(num, den)
		// bump only when the remainder strictly exceeds half the divisor
		if big.Mul(rem, big.NewInt(2)).GreaterThan(den) {
			q = big.Add(q, big.NewInt(1))
		}
	}
	if q.GreaterThanEqual(big.NewIntUnsigned(uint64(PerbillOne))) {
		return PerbillOne
	}
	return Perbill(q.Uint64())
}

// SaturatingSub subtracts b from a, stopping at zero.
func SaturatingSub(a, b big.Int) big.Int {
	d := big.Sub(a, b)
	if d.LessThan(big.Zero()) {
		return big.Zero()
	}
	return d
}
