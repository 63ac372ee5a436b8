// Package filmrolls deserializes Film Rolls XML logbook exports into the
// canonical roll model.
package filmrolls

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"filmtag/internal/photo"
	"filmtag/internal/rolls"
)

// document is the outer <data> element. Equipment lists are carried by the
// schema but roll records reference gear by display name, so only the roll
// list feeds the canonical model.
type document struct {
	XMLName   xml.Name `xml:"data"`
	FilmRolls struct {
		Rolls []filmRoll `xml:"filmRoll"`
	} `xml:"filmRolls"`
}

type filmRoll struct {
	Title  string      `xml:"title"`
	Speed  string      `xml:"speed"`
	Camera string      `xml:"camera"`
	Load   string      `xml:"load"`
	Unload string      `xml:"unload"`
	Note   string      `xml:"note"`
	Frames []frameElem `xml:"frames>frame"`
}

type frameElem struct {
	Lens         string `xml:"lens"`
	Aperture     string `xml:"aperture"`
	ShutterSpeed string `xml:"shutterSpeed"`
	Compensation string `xml:"compensation"`
	Accessory    string `xml:"accessory"`
	Number       string `xml:"number"`
	Date         string `xml:"date"`
	Latitude     string `xml:"latitude"`
	Longitude    string `xml:"longitude"`
	Note         string `xml:"note"`
}

// Parse reads a Film Rolls XML document and returns its rolls in document
// order, normalized into the canonical model.
func Parse(content []byte) ([]rolls.Roll, error) {
	var doc document
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", rolls.ErrMalformedDocument, err)
	}

	out := make([]rolls.Roll, 0, len(doc.FilmRolls.Rolls))
	for i, src := range doc.FilmRolls.Rolls {
		roll, err := convertRoll(src)
		if err != nil {
			return nil, fmt.Errorf("film roll %d: %w", i+1, err)
		}
		out = append(out, roll)
	}
	return out, nil
}

func convertRoll(src filmRoll) (rolls.Roll, error) {
	id := strings.TrimSpace(src.Note)
	if id == "" {
		return rolls.Roll{}, fmt.Errorf("%w: missing roll identifier (<note>)", rolls.ErrMalformedDocument)
	}

	speedText := strings.TrimSpace(src.Speed)
	if speedText == "" {
		return rolls.Roll{}, fmt.Errorf("%w: roll %s: missing film speed (<speed>)", rolls.ErrMalformedDocument, id)
	}
	iso, err := strconv.ParseFloat(speedText, 64)
	if err != nil {
		return rolls.Roll{}, fmt.Errorf("roll %s: film speed: %w: %q", id, photo.ErrMalformedValue, speedText)
	}
	speed, err := photo.SpeedFromISO(iso)
	if err != nil {
		return rolls.Roll{}, fmt.Errorf("roll %s: %w", id, err)
	}

	load, err := requiredInstant(src.Load, id, "<load>")
	if err != nil {
		return rolls.Roll{}, err
	}
	unload, err := requiredInstant(src.Unload, id, "<unload>")
	if err != nil {
		return rolls.Roll{}, err
	}

	roll := rolls.Roll{
		ID:     id,
		Film:   strings.TrimSpace(src.Title),
		Speed:  speed,
		Camera: rolls.GearFromName(src.Camera),
		Load:   load,
		Unload: unload,
		Frames: make([]rolls.Frame, 0, len(src.Frames)),
	}
	for _, fe := range src.Frames {
		frame, err := convertFrame(fe, id)
		if err != nil {
			return rolls.Roll{}, err
		}
		roll.Frames = append(roll.Frames, frame)
	}
	roll.SortFrames()
	if err := roll.Validate(); err != nil {
		return rolls.Roll{}, err
	}
	return roll, nil
}

func convertFrame(src frameElem, rollID string) (rolls.Frame, error) {
	numberText := strings.TrimSpace(src.Number)
	if numberText == "" {
		return rolls.Frame{}, fmt.Errorf("%w: roll %s: frame missing sequence number (<number>)", rolls.ErrMalformedDocument, rollID)
	}
	number, err := strconv.Atoi(numberText)
	if err != nil || number < 1 {
		return rolls.Frame{}, fmt.Errorf("roll %s: frame number: %w: %q", rollID, photo.ErrMalformedValue, numberText)
	}

	frame := rolls.Frame{
		Number: number,
		Lens:   rolls.GearFromName(src.Lens),
		Note:   strings.TrimSpace(src.Note),
	}

	fail := func(err error) (rolls.Frame, error) {
		return rolls.Frame{}, fmt.Errorf("roll %s: frame %d: %w", rollID, number, err)
	}

	// Auto-exposure frames carry a mode marker instead of the metered value:
	// "Tv"/"S" for an auto aperture, "Av" for an auto shutter speed.
	switch s := strings.TrimSpace(src.Aperture); s {
	case "":
	case "Tv", "S":
		frame.AutoAperture = true
	default:
		aperture, err := photo.ParseAperture(s)
		if err != nil {
			return fail(err)
		}
		frame.Aperture = &aperture
	}
	switch s := strings.TrimSpace(src.ShutterSpeed); s {
	case "":
	case "Av":
		frame.AutoShutter = true
	default:
		shutter, err := photo.ParseShutterSpeed(s)
		if err != nil {
			return fail(err)
		}
		frame.ShutterSpeed = &shutter
	}
	if s := strings.TrimSpace(src.Compensation); s != "" {
		comp, err := photo.ParseCompensation(s)
		if err != nil {
			return fail(err)
		}
		frame.Compensation = &comp
	}
	if s := strings.TrimSpace(src.Date); s != "" {
		at, err := photo.ParseTimestamp(s)
		if err != nil {
			return fail(err)
		}
		frame.DateTime = &at
	}

	latText := strings.TrimSpace(src.Latitude)
	lonText := strings.TrimSpace(src.Longitude)
	switch {
	case latText == "" && lonText == "":
		// no position recorded
	case latText == "" || lonText == "":
		return rolls.Frame{}, fmt.Errorf("%w: roll %s: frame %d: position needs both latitude and longitude",
			rolls.ErrMalformedDocument, rollID, number)
	default:
		lat, err := strconv.ParseFloat(latText, 64)
		if err != nil {
			return fail(fmt.Errorf("latitude: %w: %q", photo.ErrMalformedValue, latText))
		}
		lon, err := strconv.ParseFloat(lonText, 64)
		if err != nil {
			return fail(fmt.Errorf("longitude: %w: %q", photo.ErrMalformedValue, lonText))
		}
		frame.Position = &photo.Position{Lat: lat, Lon: lon}
	}

	return frame, nil
}

func requiredInstant(value, rollID, element string) (photo.Instant, error) {
	text := strings.TrimSpace(value)
	if text == "" {
		return photo.Instant{}, fmt.Errorf("%w: roll %s: missing %s timestamp", rolls.ErrMalformedDocument, rollID, element)
	}
	at, err := photo.ParseTimestamp(text)
	if err != nil {
		return photo.Instant{}, fmt.Errorf("roll %s: %s: %w", rollID, element, err)
	}
	return at, nil
}
