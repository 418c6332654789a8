package model

import "strings"

// Song is a single entry in the song list: a title plus an optional
// number (hymnal or index number). Songs carry no stable identifier;
// they are addressed by their position in the collection.
type Song struct {
	Title  string `json:"title"`
	Number string `json:"number,omitempty"`
}

// DisplayLabel returns the text shown for the song in lists:
// "Title — Number" when a number is present, otherwise just the title.
func (s Song) DisplayLabel() string {
	if s.Number != "" {
		return s.Title + " — " + s.Number
	}
	return s.Title
}

// Matches reports whether the song matches a case-insensitive substring
// query against its title or number. The empty query matches everything.
func (s Song) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Number), q)
}
