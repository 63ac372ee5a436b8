package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"filmtag/internal/rolls"
)

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "author.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadFullDocument(t *testing.T) {
	path := writeDocument(t, `
name = "Jane Doe"

[license]
name = "CC BY-SA 4.0"
url = "https://creativecommons.org/licenses/by-sa/4.0/"
`)
	author, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if author.Name != "Jane Doe" {
		t.Errorf("Name = %q", author.Name)
	}
	if author.License == nil || author.License.Name != "CC BY-SA 4.0" {
		t.Fatalf("License = %+v", author.License)
	}

	if got := author.Copyright(2022); got != "© Jane Doe, 2022. Some rights reserved." {
		t.Errorf("Copyright = %q", got)
	}
	if got := author.UsageTerms(); got != "This work is licensed under the CC BY-SA 4.0 license." {
		t.Errorf("UsageTerms = %q", got)
	}

	tags := author.Tags(2022)
	byName := make(map[string]string, len(tags))
	for _, tag := range tags {
		byName[tag.Name] = tag.Value
	}
	if byName["Artist"] != "Jane Doe" {
		t.Errorf("Artist = %q", byName["Artist"])
	}
	if byName["WebStatement"] != "https://creativecommons.org/licenses/by-sa/4.0/" {
		t.Errorf("WebStatement = %q", byName["WebStatement"])
	}
}

func TestCopyrightReservation(t *testing.T) {
	tests := []struct {
		name    string
		license *License
		want    string
	}{
		{name: "unlicensed", license: nil, want: "© Jane Doe, 2022. All rights reserved."},
		{name: "cc0", license: &License{Name: "CC0 1.0"}, want: "© Jane Doe, 2022. No rights reserved."},
		{name: "attribution", license: &License{Name: "CC BY 4.0"}, want: "© Jane Doe, 2022. Some rights reserved."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			author := &Author{Name: "Jane Doe", License: tc.license}
			if got := author.Copyright(2022); got != tc.want {
				t.Errorf("Copyright = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLoadMissingName(t *testing.T) {
	path := writeDocument(t, `[license]
name = "CC BY 4.0"
`)
	if _, err := Load(path); !errors.Is(err, rolls.ErrMalformedDocument) {
		t.Fatalf("Load = %v, want ErrMalformedDocument", err)
	}
}

func TestLoadLicenseWithoutName(t *testing.T) {
	path := writeDocument(t, `name = "Jane Doe"

[license]
url = "https://example.com"
`)
	if _, err := Load(path); !errors.Is(err, rolls.ErrMalformedDocument) {
		t.Fatalf("Load = %v, want ErrMalformedDocument", err)
	}
}

func TestLoadNotTOML(t *testing.T) {
	path := writeDocument(t, `{"name": "Jane"}`)
	if _, err := Load(path); !errors.Is(err, rolls.ErrMalformedDocument) {
		t.Fatalf("Load = %v, want ErrMalformedDocument", err)
	}
}

func TestUnlicensedTags(t *testing.T) {
	author := &Author{Name: "Jane Doe"}
	tags := author.Tags(2022)
	for _, tag := range tags {
		if tag.Name == "UsageTerms" || tag.Name == "WebStatement" {
			t.Errorf("unlicensed author produced %s tag", tag.Name)
		}
	}
}
