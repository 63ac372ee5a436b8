package photo

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Position is a geographic coordinate pair in signed decimal degrees.
type Position struct {
	Lat float64
	Lon float64
}

// DMSLatitude renders the latitude as a DMS string with hemisphere letter,
// e.g. "57° 42′ 2.761″ N".
func (p Position) DMSLatitude() string {
	return formatDMS(p.Lat, "N", "S")
}

// DMSLongitude renders the longitude as a DMS string with hemisphere letter,
// e.g. "11° 57′ 13.374″ E".
func (p Position) DMSLongitude() string {
	return formatDMS(p.Lon, "E", "W")
}

// String renders the full coordinate pair in DMS form.
func (p Position) String() string {
	return p.DMSLatitude() + ", " + p.DMSLongitude()
}

// formatDMS converts a signed decimal degree value into degrees, minutes and
// seconds by successive truncation of the absolute value. The sign selects
// the hemisphere letter and never appears in the string; seconds always carry
// three decimals.
func formatDMS(value float64, positive, negative string) string {
	hemisphere := positive
	if value < 0 {
		hemisphere = negative
		value = -value
	}

	degrees := int(value)
	remainder := (value - float64(degrees)) * 60
	minutes := int(remainder)
	seconds := math.Round((remainder-float64(minutes))*60*1000) / 1000
	if seconds >= 60 {
		seconds = 0
		minutes++
	}
	if minutes >= 60 {
		minutes = 0
		degrees++
	}

	return fmt.Sprintf("%d° %d′ %s″ %s",
		degrees, minutes, strconv.FormatFloat(seconds, 'f', 3, 64), hemisphere)
}

// dmsPattern matches the textual DMS form JSON logbooks export, with minutes
// and seconds optional: `57deg 42' 3" N`.
var dmsPattern = regexp.MustCompile(`^(\d+)deg(?:\s+(\d+)')?(?:\s+(\d+(?:\.\d*)?)")?\s+([NEWS])$`)

// ParseDMS converts a textual DMS coordinate back into signed decimal
// degrees. South and west hemispheres yield negative values.
func ParseDMS(s string) (float64, error) {
	match := dmsPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("coordinate: %w: %q", ErrMalformedValue, s)
	}
	degrees, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("coordinate: %w: %q", ErrMalformedValue, s)
	}
	var minutes, seconds float64
	if match[2] != "" {
		minutes, _ = strconv.ParseFloat(match[2], 64)
	}
	if match[3] != "" {
		seconds, _ = strconv.ParseFloat(match[3], 64)
	}
	value := degrees + minutes/60 + seconds/3600
	switch match[4] {
	case "S", "W":
		value = -value
	}
	return value, nil
}
