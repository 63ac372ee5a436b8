package photo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedValue marks a literal that matches no recognized grammar.
var ErrMalformedValue = errors.New("malformed value")

// Rational is an exact ratio of two integers. Values are kept reduced with
// the sign carried by the numerator, so equal quantities from different
// sources compare equal with ==.
type Rational struct {
	Num int64
	Den int64
}

// NewRational returns the reduced rational num/den.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: rational with zero denominator", ErrMalformedValue)
	}
	return reduce(num, den), nil
}

func reduce(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Rational{Num: num, Den: den}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// ParseRational reads a rational literal in fraction form ("1/500", "-1/3"),
// integer form ("2") or decimal form ("0.5", "5.6").
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, fmt.Errorf("%w: empty rational literal", ErrMalformedValue)
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
		if err != nil {
			return Rational{}, fmt.Errorf("%w: fraction numerator %q", ErrMalformedValue, num)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
		if err != nil {
			return Rational{}, fmt.Errorf("%w: fraction denominator %q", ErrMalformedValue, den)
		}
		return NewRational(n, d)
	}
	if whole, frac, ok := strings.Cut(s, "."); ok {
		digits := whole + frac
		if len(frac) > 18 || digits == "" || digits == "-" {
			return Rational{}, fmt.Errorf("%w: decimal literal %q", ErrMalformedValue, s)
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return Rational{}, fmt.Errorf("%w: decimal literal %q", ErrMalformedValue, s)
		}
		den := int64(1)
		for i := 0; i < len(frac); i++ {
			den *= 10
		}
		return NewRational(n, den)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: rational literal %q", ErrMalformedValue, s)
	}
	return Rational{Num: n, Den: 1}, nil
}

// RationalFromFloat finds the closest reduced rational to v using continued
// fraction expansion. Denominators are bounded so that exact decimal inputs
// (0.008, 5.6) recover their natural fraction (1/125, 28/5).
func RationalFromFloat(v float64) (Rational, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rational{}, fmt.Errorf("%w: non-finite number", ErrMalformedValue)
	}
	neg := v < 0
	if neg {
		v = -v
	}
	const maxDen = int64(1e9)
	const eps = 1e-9

	// Convergents p/q of the continued fraction of v.
	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	x := v
	for {
		a := int64(math.Floor(x))
		p2 := a*p1 + p0
		q2 := a*q1 + q0
		if q2 > maxDen || q2 <= 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, p2, q2
		if math.Abs(v-float64(p1)/float64(q1)) < eps {
			break
		}
		frac := x - math.Floor(x)
		if frac == 0 {
			break
		}
		x = 1 / frac
	}
	r := reduce(p1, q1)
	if neg {
		r.Num = -r.Num
	}
	return r, nil
}

// Float64 returns the floating point value of r.
func (r Rational) Float64() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// IsZero reports whether r is the zero value or the zero quantity.
func (r Rational) IsZero() bool {
	return r.Num == 0
}

// Positive reports whether r is strictly greater than zero.
func (r Rational) Positive() bool {
	return r.Num > 0 && r.Den > 0
}

// String renders r as "num/den", or just "num" for whole values.
func (r Rational) String() string {
	if r.Den == 1 {
		return strconv.FormatInt(r.Num, 10)
	}
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

// Log2 returns the base-2 logarithm of r as a rational approximation.
// EXIF APEX values (ShutterSpeedValue, ApertureValue) are defined on a
// logarithmic scale but still encoded as rationals.
func (r Rational) Log2() (Rational, error) {
	v := r.Float64()
	if v <= 0 {
		return Rational{}, fmt.Errorf("%w: log2 of non-positive rational %s", ErrMalformedValue, r)
	}
	return RationalFromFloat(math.Log2(v))
}

// Inverse returns 1/r.
func (r Rational) Inverse() (Rational, error) {
	return NewRational(r.Den, r.Num)
}
