// Package storytext holds the pure text-shaping helpers shared by the feed
// and story-page surfaces: slug construction, sources normalization and the
// summary/body/closing split used to render a story.
package storytext

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"krux_server/internal/domain"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	slugStripRe  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugDashRe   = regexp.MustCompile(`-+`)
	storyIDRe    = regexp.MustCompile(`^(\d+)(-.+)?$`)
)

// NormalizeText collapses all whitespace runs to single spaces and trims.
func NormalizeText(value string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
}

// Slugify lowercases a headline and reduces it to [a-z0-9-].
func Slugify(value string) string {
	s := strings.ToLower(value)
	s = slugStripRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = slugDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BuildStorySlug returns "<id>-<slugified headline>". The numeric prefix is
// the authoritative part; the trailing text is cosmetic.
func BuildStorySlug(id int64, headline string) string {
	slug := Slugify(headline)
	if slug == "" {
		slug = "story"
	}
	return fmt.Sprintf("%d-%s", id, slug)
}

// BuildStoryPath returns the canonical share path for a story.
func BuildStoryPath(id int64, headline string) string {
	return "/story/" + BuildStorySlug(id, headline)
}

// ExtractStoryID pulls the leading integer out of a slug. Any slug beginning
// with a valid integer resolves regardless of the trailing text.
func ExtractStoryID(slug string) (int64, bool) {
	m := storyIDRe.FindStringSubmatch(slug)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// FirstWords truncates to at most count words, appending an ellipsis when
// something was cut.
func FirstWords(value string, count int) string {
	text := NormalizeText(value)
	if text == "" {
		return ""
	}
	words := strings.Split(text, " ")
	if len(words) <= count {
		return text
	}
	return strings.Join(words[:count], " ") + "..."
}

// ParseSources normalizes the loosely-typed sources column. The raw value may
// be a JSON array, a JSON string containing an encoded array, or null/empty.
// Entries with neither name nor url are dropped; anything unparseable
// degrades to an empty list.
func ParseSources(raw []byte) []domain.Source {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []domain.Source{}
	}

	var list []domain.Source
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
		return filterSources(list)
	}

	var encoded string
	if err := json.Unmarshal([]byte(trimmed), &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &list); err == nil {
			return filterSources(list)
		}
		return []domain.Source{}
	}

	// A bare string that is itself an encoded array (already unwrapped by
	// the driver) still parses on the first attempt, so everything left is
	// malformed.
	return []domain.Source{}
}

func filterSources(list []domain.Source) []domain.Source {
	out := make([]domain.Source, 0, len(list))
	for _, s := range list {
		if s.Name != "" || s.URL != "" {
			out = append(out, s)
		}
	}
	return out
}

// Sections is the three-way presentation split of a story body.
type Sections struct {
	Summary      string
	WhatHappened string
	WhyItMatters string
}

const summaryWordCount = 110

// SplitStorySections splits free text into a capped summary, a "what
// happened" body and a closing "why it matters" remark. Multi-paragraph input
// splits on the last paragraph; single-paragraph input splits on the last
// sentence; one-sentence input uses the whole text for both parts.
func SplitStorySections(value string) Sections {
	text := NormalizeText(value)
	summary := FirstWords(text, summaryWordCount)

	var paragraphs []string
	for _, p := range regexp.MustCompile(`\n+`).Split(value, -1) {
		if n := NormalizeText(p); n != "" {
			paragraphs = append(paragraphs, n)
		}
	}

	if len(paragraphs) > 1 {
		return Sections{
			Summary:      summary,
			WhatHappened: NormalizeText(strings.Join(paragraphs[:len(paragraphs)-1], " ")),
			WhyItMatters: paragraphs[len(paragraphs)-1],
		}
	}

	sentences := splitSentences(text)
	if len(sentences) <= 1 {
		return Sections{Summary: summary, WhatHappened: text, WhyItMatters: text}
	}

	return Sections{
		Summary:      summary,
		WhatHappened: NormalizeText(strings.Join(sentences[:len(sentences)-1], " ")),
		WhyItMatters: sentences[len(sentences)-1],
	}
}

// splitSentences cuts after terminal punctuation followed by whitespace.
func splitSentences(text string) []string {
	var out []string
	var cur strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		cur.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') &&
			(i+1 >= len(runes) || runes[i+1] == ' ') {
			if s := strings.TrimSpace(cur.String()); s != "" {
				out = append(out, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		out = append(out, s)
	}
	return out
}
