// Package tasks orchestrates playlist edits with real-time progress reporting.
//
// # Core Operations
//
// The [PlaylistEditor] interface defines the workflows:
//
//  1. [PlaylistEditor.AddAlbum] : Append an album to a playlist
//     - Searches for exactly one album by artist and title
//     - Fetches the album's track list in provider order
//     - Adds every track to the playlist in one request
//
//  2. [PlaylistEditor.Reorder] : Sort a playlist chronologically
//     - Fetches the playlist snapshot
//     - Orders entries by (release date, album, disc, track), stable and ascending
//     - Removes the original tracks, then adds them back in the new order
//
//  3. [PlaylistEditor.Entries] : Read a playlist, optionally in chronological order
//
// # Release Dates
//
// Spotify reports album release dates with a precision of year, month or day.
// [NormalizeReleaseDate] expands partial dates to the first day of the period
// so that a "2020" album sorts together with "2020-01-01".
//
// # Partial Failure
//
// Reorder is delete-then-add. Between the two calls the playlist is empty of the reordered tracks;
// if the add fails nothing is rolled back and the error names the affected playlist.
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
// Updates use select with default to prevent blocking.
package tasks
