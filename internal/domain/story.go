package domain

import (
	"errors"
	"time"
)

// ErrStoryNotFound is returned when a story id or slug resolves to nothing.
var ErrStoryNotFound = errors.New("story not found")

type Story struct {
	ID        int64      `json:"id"`
	Headline  string     `json:"headline"`
	Output    string     `json:"output"`
	NewsDate  time.Time  `json:"news_date"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	ImageURL  *string    `json:"image_url,omitempty"`
	Sources   []Source   `json:"sources"`
}

// Source is one attribution entry. Both fields are optional, but an entry
// with neither is dropped during normalization.
type Source struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// StoryDetail is the presentation shape of a single story page: the raw
// story plus its three-way text split and canonical share path.
type StoryDetail struct {
	ID            int64      `json:"id"`
	Headline      string     `json:"headline"`
	NewsDate      time.Time  `json:"news_date"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Summary       string     `json:"summary"`
	WhatHappened  string     `json:"what_happened"`
	WhyItMatters  string     `json:"why_it_matters"`
	Sources       []Source   `json:"sources"`
	CanonicalPath string     `json:"canonical_path"`
}

// SitemapEntry is the minimal story projection needed to emit a sitemap URL.
type SitemapEntry struct {
	ID        int64      `db:"id"`
	Headline  string     `db:"headline"`
	NewsDate  time.Time  `db:"news_date"`
	CreatedAt *time.Time `db:"created_at"`
}

// Page is one batch of the feed. HasMore is a heuristic: true iff the batch
// filled the requested size, so an exactly-full final page reads as true
// until the next, empty fetch.
type Page struct {
	Stories []Story
	HasMore bool
}
