// Package lightme deserializes Lightme JSON logbook exports into the
// canonical roll model.
//
// A Lightme export is a flat array of frame objects; roll-level fields are
// repeated on every frame and the roll identifier lives in ReelName. Frames
// are grouped back into rolls here, preserving first-encountered order.
package lightme

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"filmtag/internal/photo"
	"filmtag/internal/rolls"
)

type frameObject struct {
	DateTimeOriginal string   `json:"DateTimeOriginal"`
	DocumentName     string   `json:"DocumentName"`
	ExposureTime     *float64 `json:"ExposureTime"`
	FNumber          *float64 `json:"FNumber"`
	FocalLength      *float64 `json:"FocalLength"`
	FocalLength35    *float64 `json:"FocalLengthIn35mmFormat"`
	GPSLatitude      string   `json:"GPSLatitude"`
	GPSLongitude     string   `json:"GPSLongitude"`
	ImageNumber      int      `json:"ImageNumber"`
	ISOSpeed         *float64 `json:"ISOSpeed"`
	LensMake         string   `json:"LensMake"`
	LensModel        string   `json:"LensModel"`
	Make             string   `json:"Make"`
	Model            string   `json:"Model"`
	Notes            string   `json:"Notes"`
	ReelName         string   `json:"ReelName"`
	UserComment      string   `json:"UserComment"`
}

// modelSuffix matches the parenthesized qualifier Lightme appends to camera
// and lens model names, e.g. "Bessa R2M (Voigtländer)".
var modelSuffix = regexp.MustCompile(`\s+\([^)]*\)$`)

var (
	loadDateLine   = regexp.MustCompile(`(?m)^load_date:\n(.+)$`)
	unloadDateLine = regexp.MustCompile(`(?m)^unload_date:\n(.+)$`)
)

// Parse reads a Lightme JSON export and returns its rolls, grouped by reel
// name in first-encountered order and normalized into the canonical model.
func Parse(content []byte) ([]rolls.Roll, error) {
	var frames []frameObject
	if err := json.Unmarshal(content, &frames); err != nil {
		return nil, fmt.Errorf("%w: %v", rolls.ErrMalformedDocument, err)
	}

	grouped := make(map[string][]frameObject)
	var order []string
	for i, fo := range frames {
		reel := strings.TrimSpace(fo.ReelName)
		if reel == "" {
			return nil, fmt.Errorf("%w: frame %d: missing roll identifier (ReelName)", rolls.ErrMalformedDocument, i+1)
		}
		if _, seen := grouped[reel]; !seen {
			order = append(order, reel)
		}
		grouped[reel] = append(grouped[reel], fo)
	}

	out := make([]rolls.Roll, 0, len(order))
	for _, reel := range order {
		roll, err := convertRoll(reel, grouped[reel])
		if err != nil {
			return nil, err
		}
		out = append(out, roll)
	}
	return out, nil
}

func convertRoll(reel string, frames []frameObject) (rolls.Roll, error) {
	first := frames[0]

	if first.ISOSpeed == nil {
		return rolls.Roll{}, fmt.Errorf("%w: roll %s: missing film speed (ISOSpeed)", rolls.ErrMalformedDocument, reel)
	}
	speed, err := photo.SpeedFromISO(*first.ISOSpeed)
	if err != nil {
		return rolls.Roll{}, fmt.Errorf("roll %s: %w", reel, err)
	}

	load, unload, err := parseUserComment(reel, first.UserComment)
	if err != nil {
		return rolls.Roll{}, err
	}

	roll := rolls.Roll{
		ID:     reel,
		Film:   strings.TrimSpace(first.DocumentName),
		Speed:  speed,
		Camera: gearFromParts(first.Make, first.Model),
		Load:   load,
		Unload: unload,
		Frames: make([]rolls.Frame, 0, len(frames)),
	}
	for _, fo := range frames {
		frame, err := convertFrame(fo, reel)
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

func convertFrame(src frameObject, reel string) (rolls.Frame, error) {
	if src.ImageNumber < 1 {
		return rolls.Frame{}, fmt.Errorf("%w: roll %s: frame missing sequence number (ImageNumber)", rolls.ErrMalformedDocument, reel)
	}

	frame := rolls.Frame{
		Number: src.ImageNumber,
		Lens:   gearFromParts(src.LensMake, src.LensModel),
		Note:   strings.TrimSpace(src.Notes),
	}

	fail := func(err error) (rolls.Frame, error) {
		return rolls.Frame{}, fmt.Errorf("roll %s: frame %d: %w", reel, src.ImageNumber, err)
	}

	if src.ExposureTime != nil {
		shutter, err := photo.ShutterSpeedFromSeconds(*src.ExposureTime)
		if err != nil {
			return fail(err)
		}
		frame.ShutterSpeed = &shutter
	}
	if src.FNumber != nil {
		aperture, err := photo.ApertureFromFloat(*src.FNumber)
		if err != nil {
			return fail(err)
		}
		frame.Aperture = &aperture
	}
	if src.FocalLength != nil {
		focal, err := photo.FocalLengthFromFloat(*src.FocalLength)
		if err != nil {
			return fail(err)
		}
		frame.FocalLength = &focal
		if src.FocalLength35 != nil {
			equiv, err := photo.FocalLengthFromFloat(*src.FocalLength35)
			if err != nil {
				return fail(err)
			}
			frame.FocalLength35 = &equiv
		}
	}
	if s := strings.TrimSpace(src.DateTimeOriginal); s != "" {
		at, err := photo.ParseExifTimestamp(s)
		if err != nil {
			return fail(err)
		}
		frame.DateTime = &at
	}

	latText := strings.TrimSpace(src.GPSLatitude)
	lonText := strings.TrimSpace(src.GPSLongitude)
	switch {
	case latText == "" && lonText == "":
		// no position recorded
	case latText == "" || lonText == "":
		return rolls.Frame{}, fmt.Errorf("%w: roll %s: frame %d: position needs both GPSLatitude and GPSLongitude",
			rolls.ErrMalformedDocument, reel, src.ImageNumber)
	default:
		lat, err := photo.ParseDMS(latText)
		if err != nil {
			return fail(err)
		}
		lon, err := photo.ParseDMS(lonText)
		if err != nil {
			return fail(err)
		}
		frame.Position = &photo.Position{Lat: lat, Lon: lon}
	}

	return frame, nil
}

// gearFromParts builds a gear identity from Lightme's make/model pair,
// stripping the parenthesized suffix from the model name. A missing model
// means no identity at all, even when the make is present.
func gearFromParts(maker, model string) *rolls.Gear {
	model = strings.TrimSpace(modelSuffix.ReplaceAllString(strings.TrimSpace(model), ""))
	if model == "" {
		return nil
	}
	return rolls.GearFromMakeModel(maker, model)
}

// parseUserComment extracts the roll load/unload instants from the free-form
// UserComment block Lightme writes ("load_date:\n30 Apr 2022 at 17:57").
func parseUserComment(reel, comment string) (load, unload photo.Instant, err error) {
	if strings.TrimSpace(comment) == "" {
		return photo.Instant{}, photo.Instant{},
			fmt.Errorf("%w: roll %s: missing load/unload dates (UserComment)", rolls.ErrMalformedDocument, reel)
	}
	loadMatch := loadDateLine.FindStringSubmatch(comment)
	unloadMatch := unloadDateLine.FindStringSubmatch(comment)
	if loadMatch == nil || unloadMatch == nil {
		return photo.Instant{}, photo.Instant{},
			fmt.Errorf("%w: roll %s: UserComment lacks load_date/unload_date entries", rolls.ErrMalformedDocument, reel)
	}
	load, err = photo.ParseExifTimestamp(strings.TrimSpace(loadMatch[1]))
	if err != nil {
		return photo.Instant{}, photo.Instant{}, fmt.Errorf("roll %s: load date: %w", reel, err)
	}
	unload, err = photo.ParseExifTimestamp(strings.TrimSpace(unloadMatch[1]))
	if err != nil {
		return photo.Instant{}, photo.Instant{}, fmt.Errorf("roll %s: unload date: %w", reel, err)
	}
	return load, unload, nil
}
