// Package models defines the entities a single playlist edit works with.
//
// Every value is built from one API response, consumed within one command and then discarded:
//   - [PlaylistEntry] : a playlist track with its album name, normalized release date, disc and track number
//   - [SortKey] : the (release date, album, disc, track) tuple entries are ordered by
//
// Nothing here is persisted or cached across runs.
package models
