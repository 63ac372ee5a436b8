// Package metadata loads author and license information from a TOML document
// and turns it into embedded rights tags. This path is independent of the
// logbook ingestion flow; it annotates images with ownership, not exposure
// data.
package metadata

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"filmtag/internal/negative"
	"filmtag/internal/rolls"
)

// License names the terms a work is released under.
type License struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// Author is the rights holder described by an author-metadata document.
type Author struct {
	Name    string   `toml:"name"`
	License *License `toml:"license"`
}

// Load reads an author-metadata TOML document.
func Load(path string) (*Author, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read author metadata: %w", err)
	}
	var author Author
	if err := toml.Unmarshal(content, &author); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", rolls.ErrMalformedDocument, path, err)
	}
	author.Name = strings.TrimSpace(author.Name)
	if author.Name == "" {
		return nil, fmt.Errorf("%w: %s: missing author name", rolls.ErrMalformedDocument, path)
	}
	if author.License != nil && strings.TrimSpace(author.License.Name) == "" {
		return nil, fmt.Errorf("%w: %s: license table without a name", rolls.ErrMalformedDocument, path)
	}
	return &author, nil
}

// Copyright renders the rights statement for the given year. The reservation
// clause follows the license: none reserves all rights, a public-domain
// dedication reserves none, anything else reserves some.
func (a *Author) Copyright(year int) string {
	return fmt.Sprintf("© %s, %d. %s rights reserved.", a.Name, year, a.reservation())
}

func (a *Author) reservation() string {
	if a.License == nil {
		return "All"
	}
	name := strings.ToLower(a.License.Name)
	if strings.Contains(name, "cc0") || strings.Contains(name, "public domain") {
		return "No"
	}
	return "Some"
}

// UsageTerms renders the license sentence, or an empty string when the work
// has no license.
func (a *Author) UsageTerms() string {
	if a.License == nil {
		return ""
	}
	return fmt.Sprintf("This work is licensed under the %s license.", a.License.Name)
}

// Tags builds the embedded rights tag set for the given copyright year.
func (a *Author) Tags(year int) negative.TagSet {
	tags := negative.TagSet{
		{Name: "Artist", Value: a.Name},
		{Name: "Copyright", Value: a.Copyright(year)},
	}
	if a.License != nil {
		tags = append(tags, negative.Tag{Name: "UsageTerms", Value: a.UsageTerms()})
		if a.License.URL != "" {
			tags = append(tags, negative.Tag{Name: "WebStatement", Value: a.License.URL})
		}
	}
	return tags
}
