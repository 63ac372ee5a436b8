package photo

import (
	"errors"
	"testing"
)

// The full standard arithmetic/logarithmic series.
var filmSpeedSeries = []struct {
	iso  float64
	din  uint8
	text string
}{
	{0.8, 0, "0.8/0°"},
	{1, 1, "1/1°"},
	{1.2, 2, "1.2/2°"},
	{1.6, 3, "1.6/3°"},
	{2, 4, "2/4°"},
	{2.5, 5, "2.5/5°"},
	{3, 6, "3/6°"},
	{4, 7, "4/7°"},
	{5, 8, "5/8°"},
	{6, 9, "6/9°"},
	{8, 10, "8/10°"},
	{10, 11, "10/11°"},
	{12, 12, "12/12°"},
	{16, 13, "16/13°"},
	{20, 14, "20/14°"},
	{25, 15, "25/15°"},
	{32, 16, "32/16°"},
	{40, 17, "40/17°"},
	{50, 18, "50/18°"},
	{64, 19, "64/19°"},
	{80, 20, "80/20°"},
	{100, 21, "100/21°"},
	{125, 22, "125/22°"},
	{160, 23, "160/23°"},
	{200, 24, "200/24°"},
	{250, 25, "250/25°"},
	{320, 26, "320/26°"},
	{400, 27, "400/27°"},
	{500, 28, "500/28°"},
	{640, 29, "640/29°"},
	{800, 30, "800/30°"},
	{1000, 31, "1000/31°"},
	{1250, 32, "1250/32°"},
	{1600, 33, "1600/33°"},
	{2000, 34, "2000/34°"},
	{2500, 35, "2500/35°"},
	{3200, 36, "3200/36°"},
	{4000, 37, "4000/37°"},
	{5000, 38, "5000/38°"},
	{6400, 39, "6400/39°"},
	{8000, 40, "8000/40°"},
	{10000, 41, "10000/41°"},
	{12500, 42, "12500/42°"},
	{16000, 43, "16000/43°"},
	{20000, 44, "20000/44°"},
}

func TestSpeedFromDIN(t *testing.T) {
	for _, tc := range filmSpeedSeries {
		speed, err := SpeedFromDIN(tc.din)
		if err != nil {
			t.Fatalf("SpeedFromDIN(%d): %v", tc.din, err)
		}
		if got := speed.ASA().Float64(); got != tc.iso {
			t.Fatalf("DIN %d°: ASA = %v, want %v", tc.din, got, tc.iso)
		}
		if speed.DIN() != tc.din {
			t.Fatalf("DIN %d°: DIN() = %d", tc.din, speed.DIN())
		}
		if got := speed.String(); got != tc.text {
			t.Fatalf("DIN %d°: String() = %q, want %q", tc.din, got, tc.text)
		}
		if speed.Scale() != ScaleLogarithmic {
			t.Fatalf("DIN %d°: scale should be logarithmic", tc.din)
		}
	}
}

func TestSpeedFromISO(t *testing.T) {
	for _, tc := range filmSpeedSeries {
		speed, err := SpeedFromISO(tc.iso)
		if err != nil {
			t.Fatalf("SpeedFromISO(%v): %v", tc.iso, err)
		}
		if speed.DIN() != tc.din {
			t.Fatalf("ISO %v: DIN = %d, want %d", tc.iso, speed.DIN(), tc.din)
		}
		if got := speed.String(); got != tc.text {
			t.Fatalf("ISO %v: String() = %q, want %q", tc.iso, got, tc.text)
		}
		if speed.Scale() != ScaleArithmetic {
			t.Fatalf("ISO %v: scale should be arithmetic", tc.iso)
		}
	}
}

func TestSpeedFromISOInvalid(t *testing.T) {
	for _, iso := range []float64{0, -100, 0.6, 1e30} {
		if _, err := SpeedFromISO(iso); !errors.Is(err, ErrMalformedValue) {
			t.Fatalf("SpeedFromISO(%v) = %v, want ErrMalformedValue", iso, err)
		}
	}
	if _, err := SpeedFromDIN(45); !errors.Is(err, ErrMalformedValue) {
		t.Fatal("SpeedFromDIN(45) should fail")
	}
}

func TestISOInteger(t *testing.T) {
	speed, err := SpeedFromISO(100)
	if err != nil {
		t.Fatal(err)
	}
	if got := speed.ISOInteger(); got != 100 {
		t.Fatalf("ISOInteger() = %d, want 100", got)
	}
}
