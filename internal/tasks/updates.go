package tasks

import (
	"fmt"

	"github.com/desertthunder/spotlist/internal/models"
)

// ProgressUpdate represents a progress event during a playlist operation.
//
// Used to send real-time updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within the operation
	Total   int    // Total steps in the operation
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data
}

// Operation phase enumeration
type Phase int

const (
	SearchAlbum Phase = iota
	FetchAlbumTracks
	FetchPlaylist
	SortTracks
	RemoveTracks
	AddTracks
)

func (p Phase) String() string {
	switch p {
	case SearchAlbum:
		return "search_album"
	case FetchAlbumTracks:
		return "fetch_album_tracks"
	case FetchPlaylist:
		return "fetch_playlist"
	case SortTracks:
		return "sort_tracks"
	case RemoveTracks:
		return "remove_tracks"
	case AddTracks:
		return "add_tracks"
	default:
		return ""
	}
}

func searchAlbumUpdate(step, total int, artist, album string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchAlbum,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Searching for %s - %s...", artist, album),
	}
}

func fetchAlbumTracksUpdate(step, total int, albumID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchAlbumTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching tracks for album %s...", albumID),
	}
}

func fetchPlaylistUpdate(step, total int, playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching playlist %s...", playlistID),
	}
}

func sortTracksUpdate(step, total int, ordered []models.PlaylistEntry) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SortTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Ordered %d tracks by release date", len(ordered)),
		Data:    ordered,
	}
}

func removeTracksUpdate(step, total, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RemoveTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Removing %d tracks...", count),
	}
}

func addTracksUpdate(step, total, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AddTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Adding %d tracks...", count),
	}
}
