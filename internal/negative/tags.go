package negative

import (
	"fmt"
	"strconv"
	"strings"

	"filmtag/internal/photo"
	"filmtag/internal/rolls"
)

// Tag is one named embedded-metadata value, rendered as the string exiftool
// expects for the tag.
type Tag struct {
	Name  string
	Value string
}

// TagSet is an ordered list of tags. Order is deterministic for a given
// frame, so dry-run output and live writes see the same rendering.
type TagSet []Tag

func (ts *TagSet) add(name, value string) {
	*ts = append(*ts, Tag{Name: name, Value: value})
}

// String renders the set one "Name=Value" line per tag.
func (ts TagSet) String() string {
	var b strings.Builder
	for _, tag := range ts {
		b.WriteString(tag.Name)
		b.WriteByte('=')
		b.WriteString(tag.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// Generate computes the tag set for one frame of a roll. Absent frame fields
// produce absent tags, never zeroed ones. A frame with no writable fields at
// all yields ErrNoApplicableMetadata, which callers treat as a no-op.
func Generate(roll *rolls.Roll, frame *rolls.Frame) (TagSet, error) {
	var tags TagSet
	applicable := 0

	if roll.Camera != nil {
		applicable++
		if roll.Camera.Make != "" {
			tags.add("Make", roll.Camera.Make)
		}
		tags.add("Model", roll.Camera.Model)
		tags.add("UniqueCameraModel", roll.Camera.String())
	}
	if roll.Film != "" {
		applicable++
		tags.add("UserComment", roll.Film)
	}

	// Sensitivity rides along with the roll and is only worth writing when
	// the frame contributes at least one field of its own or the roll names
	// its gear or stock.
	iso := strconv.FormatInt(roll.Speed.ISOInteger(), 10)
	tags.add("ISO", iso)
	tags.add("ISOSpeed", iso)
	tags.add("SensitivityType", "3")

	if frame.DateTime != nil {
		applicable++
		tags.add("DateTimeOriginal", frame.DateTime.ExifString())
	}
	if frame.Lens != nil {
		applicable++
		if frame.Lens.Make != "" {
			tags.add("LensMake", frame.Lens.Make)
		}
		tags.add("LensModel", frame.Lens.Model)
		tags.add("Lens", frame.Lens.String())
	}
	if frame.FocalLength != nil {
		applicable++
		tags.add("FocalLength", frame.FocalLength.String())
		if frame.FocalLength35 != nil {
			tags.add("FocalLengthIn35mmFormat", frame.FocalLength35.String())
		}
	}
	if frame.ShutterSpeed != nil {
		applicable++
		tags.add("ExposureTime", frame.ShutterSpeed.String())
		if apex, err := shutterAPEX(*frame.ShutterSpeed); err == nil {
			tags.add("ShutterSpeedValue", apex.String())
		}
	}
	if frame.Aperture != nil {
		applicable++
		tags.add("FNumber", frame.Aperture.String())
		if apex, err := apertureAPEX(*frame.Aperture); err == nil {
			tags.add("ApertureValue", apex.String())
		}
	}
	if frame.AutoShutter {
		applicable++
	}
	if frame.AutoAperture {
		applicable++
	}
	if program, ok := exposureProgram(frame); ok {
		tags.add("ExposureProgram", program)
	}
	if frame.Compensation != nil {
		applicable++
		tags.add("ExposureCompensation", frame.Compensation.String())
	}
	if frame.Position != nil {
		applicable++
		pos := frame.Position
		tags.add("GPSLatitude", formatCoordinate(pos.Lat))
		tags.add("GPSLatitudeRef", hemisphere(pos.Lat, "N", "S"))
		tags.add("GPSLongitude", formatCoordinate(pos.Lon))
		tags.add("GPSLongitudeRef", hemisphere(pos.Lon, "E", "W"))
		tags.add("GPSPosition", pos.String())
	}
	if frame.Note != "" {
		applicable++
		tags.add("ImageDescription", frame.Note)
	}

	if applicable == 0 {
		return nil, fmt.Errorf("%w: roll %s frame %d", ErrNoApplicableMetadata, roll.ID, frame.Number)
	}
	return tags, nil
}

// exposureProgram derives the shooting mode from how each side of the
// exposure pair was recorded: a metered value means the photographer set it,
// an auto marker means the body did. With neither side recorded there is no
// mode to report; with only one side the mode is "not defined" (0).
func exposureProgram(frame *rolls.Frame) (string, bool) {
	hasShutter := frame.ShutterSpeed != nil || frame.AutoShutter
	hasAperture := frame.Aperture != nil || frame.AutoAperture
	if !hasShutter && !hasAperture {
		return "", false
	}
	switch {
	case frame.AutoShutter && frame.AutoAperture:
		return "2", true // program AE
	case frame.AutoShutter && frame.Aperture != nil:
		return "3", true // aperture priority AE
	case frame.ShutterSpeed != nil && frame.AutoAperture:
		return "4", true // shutter priority AE
	case frame.ShutterSpeed != nil && frame.Aperture != nil:
		return "1", true // manual
	}
	return "0", true
}

// shutterAPEX is the Tv value, log2 of the reciprocal exposure time.
func shutterAPEX(exposure photo.Rational) (photo.Rational, error) {
	inverse, err := exposure.Inverse()
	if err != nil {
		return photo.Rational{}, err
	}
	return inverse.Log2()
}

// apertureAPEX is the Av value, log2 of the squared f-number.
func apertureAPEX(fnumber photo.Rational) (photo.Rational, error) {
	squared, err := photo.NewRational(fnumber.Num*fnumber.Num, fnumber.Den*fnumber.Den)
	if err != nil {
		return photo.Rational{}, err
	}
	return squared.Log2()
}

// formatCoordinate renders the unsigned decimal degrees; hemisphere letters
// carry the sign.
func formatCoordinate(value float64) string {
	if value < 0 {
		value = -value
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func hemisphere(value float64, positive, negative string) string {
	if value < 0 {
		return negative
	}
	return positive
}
