package tasks

import (
	"slices"
	"time"

	"github.com/desertthunder/spotlist/internal/models"
	"github.com/desertthunder/spotlist/internal/services"
)

// NormalizeReleaseDate expands a partial release date to a full YYYY-MM-DD date.
//
// Year precision maps to January 1st and month precision to the first of the month.
// Any other precision passes the date through unchanged.
func NormalizeReleaseDate(date, precision string) string {
	switch precision {
	case models.PrecisionYear:
		return date + "-01-01"
	case models.PrecisionMonth:
		return date + "-01"
	default:
		return date
	}
}

// ParseReleaseDate parses a normalized release date. Unparseable dates return the zero time.
func ParseReleaseDate(date string) time.Time {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NewEntry converts a Spotify track into a [models.PlaylistEntry].
func NewEntry(track *services.SpotifyTrack) models.PlaylistEntry {
	date := NormalizeReleaseDate(track.Album.ReleaseDate, track.Album.ReleaseDatePrecision)
	return models.PlaylistEntry{
		ID:          track.ID,
		Title:       track.Name,
		Album:       track.Album.Name,
		ReleaseDate: date,
		Released:    ParseReleaseDate(date),
		DiscNumber:  track.DiscNumber,
		TrackNumber: track.TrackNumber,
	}
}

// Entries converts a playlist snapshot to entries in playlist order.
//
// Items without a resolvable track id are dropped and counted in skipped.
func Entries(playlist *services.SpotifyPlaylist) (entries []models.PlaylistEntry, skipped int) {
	entries = make([]models.PlaylistEntry, 0, len(playlist.Tracks.Items))
	for _, item := range playlist.Tracks.Items {
		if item.Track == nil || item.Track.ID == "" {
			skipped++
			continue
		}
		entries = append(entries, NewEntry(item.Track))
	}
	return entries, skipped
}

// OrderTracks returns a copy of entries stable-sorted ascending by
// release date, album name, disc number then track number.
func OrderTracks(entries []models.PlaylistEntry) []models.PlaylistEntry {
	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b models.PlaylistEntry) int {
		return a.Key().Compare(b.Key())
	})
	return ordered
}
