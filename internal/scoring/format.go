package scoring

import (
	"math/big"
	"strings"
)

// Percentage returns round(100 × score / total), rounding halves up.
// Returns 0 when total is not positive.
func Percentage(score *big.Rat, total int) int {
	if total <= 0 || score == nil {
		return 0
	}
	r := new(big.Rat).Mul(score, big.NewRat(100, int64(total)))

	// floor((2·num + den) / (2·den)) for a non-negative ratio.
	num := new(big.Int).Mul(r.Num(), big.NewInt(2))
	num.Add(num, r.Denom())
	den := new(big.Int).Mul(r.Denom(), big.NewInt(2))
	return int(new(big.Int).Quo(num, den).Int64())
}

// Format renders whole points as "25" and fractional points with at most
// two decimals, e.g. "6.67" or "7.5".
func Format(r *big.Rat) string {
	if r == nil {
		return "0"
	}
	if r.IsInt() {
		return r.Num().String()
	}
	s := r.FloatString(2)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Float returns r as a float64 for rendering progress bars.
func Float(r *big.Rat) float64 {
	if r == nil {
		return 0
	}
	f, _ := r.Float64()
	return f
}

// Fraction returns score/total in [0, 1] for progress bars.
func Fraction(score *big.Rat, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Float(score) / float64(total)
}
