package rolls

import (
	"fmt"
	"sort"
	"strings"

	"filmtag/internal/photo"
)

// Gear identifies a camera or lens. Sources that separate make from model
// fill both fields; sources with a single display name leave Make empty.
type Gear struct {
	Make  string
	Model string
}

// GearFromName builds a single-name gear identity.
func GearFromName(name string) *Gear {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return &Gear{Model: name}
}

// GearFromMakeModel builds a gear identity from separate make and model.
// An empty make degrades to a single-name identity.
func GearFromMakeModel(maker, model string) *Gear {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil
	}
	return &Gear{Make: strings.TrimSpace(maker), Model: model}
}

// String joins make and model for display.
func (g Gear) String() string {
	if g.Make == "" {
		return g.Model
	}
	return g.Make + " " + g.Model
}

// Frame is one exposure within a roll. All shot parameters are optional;
// absent fields stay nil and are never invented downstream.
//
// Logbooks record auto-exposure frames with a mode marker instead of the
// metered value: AutoShutter means the body chose the shutter speed
// (aperture-priority shooting) and AutoAperture means the body chose the
// aperture (shutter-priority shooting). A marker and its value never appear
// together.
type Frame struct {
	Number        int
	Lens          *Gear
	FocalLength   *photo.Rational // millimeters
	FocalLength35 *photo.Rational // 35mm-equivalent millimeters
	Aperture      *photo.Rational // f-number
	AutoAperture  bool
	ShutterSpeed  *photo.Rational // seconds
	AutoShutter   bool
	Compensation  *photo.Rational // stops
	DateTime      *photo.Instant
	Position      *photo.Position
	Note          string
}

// Roll is one loaded/unloaded unit of film with its ordered frames.
type Roll struct {
	ID     string
	Film   string
	Speed  photo.FilmSpeed
	Camera *Gear
	Load   photo.Instant
	Unload photo.Instant
	Frames []Frame
}

// SortFrames orders the frames by sequence number in place.
func (r *Roll) SortFrames() {
	sort.Slice(r.Frames, func(i, j int) bool {
		return r.Frames[i].Number < r.Frames[j].Number
	})
}

// Validate checks the roll invariants: a non-empty identifier and frame
// numbers running exactly 1..len(frames) with no gaps or duplicates.
func (r *Roll) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: roll has no identifier", ErrMalformedDocument)
	}
	for i, frame := range r.Frames {
		if frame.Number != i+1 {
			return fmt.Errorf("%w: roll %s: frame %d out of sequence at position %d",
				ErrMalformedDocument, r.ID, frame.Number, i+1)
		}
	}
	return nil
}
