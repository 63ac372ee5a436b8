package photo

import (
	"fmt"
	"math"
	"strconv"
)

// SpeedScale records the scale a sensitivity value was supplied in.
type SpeedScale int

const (
	// ScaleArithmetic is the familiar linear ISO/ASA scale (100, 200, 400).
	ScaleArithmetic SpeedScale = iota
	// ScaleLogarithmic is the DIN degree scale (21°, 24°, 27°).
	ScaleLogarithmic
)

// FilmSpeed is a standardized film sensitivity. The canonical value is the
// logarithmic DIN degree, which maps one-to-one onto the standard arithmetic
// series; the scale the source supplied is retained for faithful display.
type FilmSpeed struct {
	din   uint8
	scale SpeedScale
}

// maxDIN is the last degree of the standard arithmetic series (ISO 20000).
const maxDIN = 44

// SpeedFromDIN constructs a film speed from a logarithmic DIN degree.
func SpeedFromDIN(din uint8) (FilmSpeed, error) {
	if din > maxDIN {
		return FilmSpeed{}, fmt.Errorf("film speed: %w: DIN %d° outside the standard series", ErrMalformedValue, din)
	}
	return FilmSpeed{din: din, scale: ScaleLogarithmic}, nil
}

// SpeedFromISO constructs a film speed from an arithmetic ISO/ASA value.
func SpeedFromISO(iso float64) (FilmSpeed, error) {
	if iso <= 0 || math.IsNaN(iso) || math.IsInf(iso, 0) {
		return FilmSpeed{}, fmt.Errorf("film speed: %w: ISO %v is not positive", ErrMalformedValue, iso)
	}
	din := math.Round(10*math.Log10(iso) + 1)
	if din < 0 || din > maxDIN {
		return FilmSpeed{}, fmt.Errorf("film speed: %w: ISO %v outside the standard series", ErrMalformedValue, iso)
	}
	return FilmSpeed{din: uint8(din), scale: ScaleArithmetic}, nil
}

// DIN returns the logarithmic degree of this film speed.
func (s FilmSpeed) DIN() uint8 {
	return s.din
}

// Scale returns the scale the sensitivity was originally supplied in.
func (s FilmSpeed) Scale() SpeedScale {
	return s.scale
}

// ASA returns the arithmetic value of this film speed as an exact rational.
// The standard series repeats per decade over ten base values; the two
// rounding exceptions (12.5 at low shifts, single-digit 3 and 6) follow the
// published series.
func (s FilmSpeed) ASA() Rational {
	shift := 4 - int(s.din)/10
	var base int64
	switch s.din % 10 {
	case 0:
		base = 8000
	case 1:
		base = 10000
	case 2:
		base = 12500
	case 3:
		base = 16000
	case 4:
		base = 20000
	case 5:
		base = 25000
	case 6:
		base = 32000
	case 7:
		base = 40000
	case 8:
		base = 50000
	case 9:
		base = 64000
	}

	switch {
	case base == 12500 && shift == 4:
		return Rational{Num: 6, Den: 5} // 1.2
	case base == 12500 && shift == 3:
		return Rational{Num: 12, Den: 1}
	case base == 32000 && shift == 4:
		return Rational{Num: 3, Den: 1}
	case base == 64000 && shift == 4:
		return Rational{Num: 6, Den: 1}
	}

	den := int64(1)
	for i := 0; i < shift; i++ {
		den *= 10
	}
	return reduce(base, den)
}

// ISO is an alias for the arithmetic value.
func (s FilmSpeed) ISO() Rational {
	return s.ASA()
}

// ISOInteger returns the arithmetic value rounded to a whole number, as
// embedded sensitivity tags require.
func (s FilmSpeed) ISOInteger() int64 {
	return int64(math.Round(s.ASA().Float64()))
}

// String renders both scales, e.g. "100/21°".
func (s FilmSpeed) String() string {
	asa := strconv.FormatFloat(s.ASA().Float64(), 'f', -1, 64)
	return fmt.Sprintf("%s/%d°", asa, s.din)
}
