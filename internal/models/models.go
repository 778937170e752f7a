// package models defines the transient data model for playlist edits
package models

import (
	"cmp"
	"time"
)

// Release date precisions reported by Spotify.
const (
	PrecisionYear  = "year"
	PrecisionMonth = "month"
	PrecisionDay   = "day"
)

// PlaylistEntry is one track of a playlist snapshot with the album data it sorts by.
type PlaylistEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Album       string    `json:"album"`
	ReleaseDate string    `json:"release_date"` // normalized to YYYY-MM-DD where possible
	Released    time.Time `json:"-"`
	DiscNumber  int       `json:"disc_number"`
	TrackNumber int       `json:"track_number"`
}

// SortKey is the chronological ordering tuple of a [PlaylistEntry].
type SortKey struct {
	ReleaseDate time.Time
	Album       string
	Disc        int
	Track       int
}

// Key returns the entry's [SortKey].
func (e PlaylistEntry) Key() SortKey {
	return SortKey{
		ReleaseDate: e.Released,
		Album:       e.Album,
		Disc:        e.DiscNumber,
		Track:       e.TrackNumber,
	}
}

// Compare orders keys ascending by release date, album name, disc number then track number.
func (k SortKey) Compare(other SortKey) int {
	return cmp.Or(
		k.ReleaseDate.Compare(other.ReleaseDate),
		cmp.Compare(k.Album, other.Album),
		cmp.Compare(k.Disc, other.Disc),
		cmp.Compare(k.Track, other.Track),
	)
}

// IDs returns the track ids of entries in order.
func IDs(entries []PlaylistEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}
