package lightme

import (
	"errors"
	"testing"
	"time"

	"filmtag/internal/photo"
	"filmtag/internal/rolls"
)

const sampleExport = `[
  {
    "DateTimeOriginal": "2022:04:30 18:29:15",
    "DocumentName": "Ilford SFX 200",
    "ExposureTime": 0.008,
    "FNumber": 5.6,
    "FocalLength": 35,
    "FocalLengthIn35mmFormat": 35,
    "GPSLatitude": "57deg 42' 2.761\" N",
    "GPSLongitude": "11deg 57' 13.374\" E",
    "ImageNumber": 1,
    "ISOSpeed": 200,
    "LensMake": "Voigtländer",
    "LensModel": "Color Skopar 35/2.5 (VM)",
    "Make": "Voigtländer",
    "Model": "Bessa R2M (Voigtländer)",
    "Notes": "Harbour",
    "ReelName": "R021",
    "UserComment": "roll_notes:\n \ndev_notes:\n \nload_date:\n30 Apr 2022 at 17:57\nunload_date:\n1 May 2022 at 15:12"
  },
  {
    "DateTimeOriginal": "2022:04:30 18:40:02",
    "DocumentName": "Ilford SFX 200",
    "ImageNumber": 2,
    "ISOSpeed": 200,
    "Make": "Voigtländer",
    "Model": "Bessa R2M (Voigtländer)",
    "ReelName": "R021",
    "UserComment": "load_date:\n30 Apr 2022 at 17:57\nunload_date:\n1 May 2022 at 15:12"
  },
  {
    "DateTimeOriginal": "2022:05:02 09:12:44",
    "DocumentName": "Kodak Portra 400",
    "ImageNumber": 1,
    "ISOSpeed": 400,
    "ReelName": "R022",
    "UserComment": "load_date:\n1 May 2022 at 16:00\nunload_date:\n2 May 2022 at 19:30"
  }
]`

func TestParseExport(t *testing.T) {
	got, err := Parse([]byte(sampleExport))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Parse returned %d rolls, want 2", len(got))
	}

	roll := got[0]
	if roll.ID != "R021" {
		t.Errorf("ID = %q, want R021", roll.ID)
	}
	if roll.Film != "Ilford SFX 200" {
		t.Errorf("Film = %q", roll.Film)
	}
	if got := roll.Speed.ISOInteger(); got != 200 {
		t.Errorf("Speed ISO = %d, want 200", got)
	}
	if roll.Camera == nil || roll.Camera.String() != "Voigtländer Bessa R2M" {
		t.Errorf("Camera = %v, want suffix stripped", roll.Camera)
	}
	wantLoad := photo.NewInstant(time.Date(2022, 4, 30, 17, 57, 0, 0, time.Local))
	if !roll.Load.Equal(wantLoad) {
		t.Errorf("Load = %v, want %v", roll.Load, wantLoad)
	}
	wantUnload := photo.NewInstant(time.Date(2022, 5, 1, 15, 12, 0, 0, time.Local))
	if !roll.Unload.Equal(wantUnload) {
		t.Errorf("Unload = %v, want %v", roll.Unload, wantUnload)
	}

	if len(roll.Frames) != 2 {
		t.Fatalf("roll has %d frames, want 2", len(roll.Frames))
	}
	frame := roll.Frames[0]
	if frame.Lens == nil || frame.Lens.String() != "Voigtländer Color Skopar 35/2.5" {
		t.Errorf("Lens = %v, want suffix stripped", frame.Lens)
	}
	if frame.ShutterSpeed == nil || frame.ShutterSpeed.String() != "1/125" {
		t.Errorf("ShutterSpeed = %v, want 1/125", frame.ShutterSpeed)
	}
	if frame.Aperture == nil || frame.Aperture.String() != "28/5" {
		t.Errorf("Aperture = %v, want 28/5", frame.Aperture)
	}
	if frame.FocalLength == nil || frame.FocalLength.String() != "35" {
		t.Errorf("FocalLength = %v", frame.FocalLength)
	}
	if frame.FocalLength35 == nil || frame.FocalLength35.String() != "35" {
		t.Errorf("FocalLength35 = %v", frame.FocalLength35)
	}
	if frame.Position == nil {
		t.Fatal("Position = nil")
	}
	if lat := frame.Position.Lat; lat < 57.70076 || lat > 57.70078 {
		t.Errorf("Lat = %v", lat)
	}
	if lon := frame.Position.Lon; lon < 11.95371 || lon > 11.95373 {
		t.Errorf("Lon = %v", lon)
	}
	if frame.DateTime == nil || !frame.DateTime.Equal(photo.NewInstant(time.Date(2022, 4, 30, 18, 29, 15, 0, time.Local))) {
		t.Errorf("DateTime = %v", frame.DateTime)
	}
	if frame.Note != "Harbour" {
		t.Errorf("Note = %q", frame.Note)
	}

	second := roll.Frames[1]
	if second.Lens != nil || second.Aperture != nil || second.ShutterSpeed != nil || second.Position != nil {
		t.Error("absent shot parameters should stay nil")
	}

	other := got[1]
	if other.ID != "R022" || other.Camera != nil || len(other.Frames) != 1 {
		t.Errorf("second roll = %+v", other)
	}
}

func TestParseGroupsByFirstEncounter(t *testing.T) {
	export := `[
  {"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "B",
   "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"},
  {"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A",
   "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"},
  {"ImageNumber": 2, "ISOSpeed": 100, "ReelName": "B",
   "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}
]`
	got, err := Parse([]byte(export))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 || got[0].ID != "B" || got[1].ID != "A" {
		t.Fatalf("roll order = %v", []string{got[0].ID, got[1].ID})
	}
	if len(got[0].Frames) != 2 {
		t.Errorf("roll B has %d frames, want 2", len(got[0].Frames))
	}
}

func TestParseNotJSON(t *testing.T) {
	if _, err := Parse([]byte("<data/>")); !errors.Is(err, rolls.ErrMalformedDocument) {
		t.Fatalf("Parse = %v, want ErrMalformedDocument", err)
	}
}

func TestParseMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		export string
	}{
		{
			name:   "missing reel name",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
		{
			name:   "missing film speed",
			export: `[{"ImageNumber": 1, "ReelName": "A", "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
		{
			name:   "missing user comment",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A"}]`,
		},
		{
			name:   "user comment without dates",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A", "UserComment": "roll_notes:\nnice light"}]`,
		},
		{
			name:   "missing image number",
			export: `[{"ISOSpeed": 100, "ReelName": "A", "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
		{
			name: "latitude without longitude",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A", "GPSLatitude": "57deg 42' 3\" N",
			  "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
		{
			name: "frame numbering gap",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A",
			  "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"},
			 {"ImageNumber": 3, "ISOSpeed": 100, "ReelName": "A",
			  "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.export))
			if !errors.Is(err, rolls.ErrMalformedDocument) {
				t.Fatalf("Parse = %v, want ErrMalformedDocument", err)
			}
		})
	}
}

func TestParseMalformedValues(t *testing.T) {
	tests := []struct {
		name   string
		export string
	}{
		{
			name: "zero exposure time",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A", "ExposureTime": 0,
			  "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
		{
			name: "bad coordinate",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A",
			  "GPSLatitude": "up north", "GPSLongitude": "11deg 57' 13\" E",
			  "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
		{
			name: "bad frame timestamp",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A", "DateTimeOriginal": "yesterday",
			  "UserComment": "load_date:\n1 May 2022 at 10:00\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
		{
			name: "bad load date",
			export: `[{"ImageNumber": 1, "ISOSpeed": 100, "ReelName": "A",
			  "UserComment": "load_date:\nrecently\nunload_date:\n2 May 2022 at 10:00"}]`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.export))
			if !errors.Is(err, photo.ErrMalformedValue) {
				t.Fatalf("Parse = %v, want ErrMalformedValue", err)
			}
		})
	}
}
