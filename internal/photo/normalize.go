package photo

import "fmt"

// ParseShutterSpeed reads a shutter speed literal in seconds ("1/500", "2",
// "0.5") and returns a positive rational.
func ParseShutterSpeed(s string) (Rational, error) {
	r, err := ParseRational(s)
	if err != nil {
		return Rational{}, fmt.Errorf("shutter speed: %w", err)
	}
	if !r.Positive() {
		return Rational{}, fmt.Errorf("shutter speed: %w: %q is not positive", ErrMalformedValue, s)
	}
	return r, nil
}

// ShutterSpeedFromSeconds converts a decimal exposure time in seconds into
// the canonical rational form ("0.008" becomes 1/125).
func ShutterSpeedFromSeconds(seconds float64) (Rational, error) {
	r, err := RationalFromFloat(seconds)
	if err != nil {
		return Rational{}, fmt.Errorf("shutter speed: %w", err)
	}
	if !r.Positive() {
		return Rational{}, fmt.Errorf("shutter speed: %w: %v is not positive", ErrMalformedValue, seconds)
	}
	return r, nil
}

// ParseAperture reads an f-number literal ("5.6", "8") and returns a
// positive rational.
func ParseAperture(s string) (Rational, error) {
	r, err := ParseRational(s)
	if err != nil {
		return Rational{}, fmt.Errorf("aperture: %w", err)
	}
	if !r.Positive() {
		return Rational{}, fmt.Errorf("aperture: %w: %q is not positive", ErrMalformedValue, s)
	}
	return r, nil
}

// ApertureFromFloat converts a numeric f-number into the canonical rational.
func ApertureFromFloat(fnumber float64) (Rational, error) {
	r, err := RationalFromFloat(fnumber)
	if err != nil {
		return Rational{}, fmt.Errorf("aperture: %w", err)
	}
	if !r.Positive() {
		return Rational{}, fmt.Errorf("aperture: %w: %v is not positive", ErrMalformedValue, fnumber)
	}
	return r, nil
}

// ParseCompensation reads a signed exposure compensation literal in stops
// ("-1/3", "1/2", "0").
func ParseCompensation(s string) (Rational, error) {
	r, err := ParseRational(s)
	if err != nil {
		return Rational{}, fmt.Errorf("exposure compensation: %w", err)
	}
	return r, nil
}

// FocalLengthFromFloat converts a focal length in millimeters into the
// canonical positive rational.
func FocalLengthFromFloat(mm float64) (Rational, error) {
	r, err := RationalFromFloat(mm)
	if err != nil {
		return Rational{}, fmt.Errorf("focal length: %w", err)
	}
	if !r.Positive() {
		return Rational{}, fmt.Errorf("focal length: %w: %v is not positive", ErrMalformedValue, mm)
	}
	return r, nil
}
