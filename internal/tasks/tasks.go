// package tasks implements the playlist workflows on top of a [services.PlaylistService].
//
// The core abstraction is PlaylistEditor, which adds albums to a playlist and reorders it.
// Operations emit progress updates via channels for non-blocking status reporting to the CLI.
package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotlist/internal/models"
	"github.com/desertthunder/spotlist/internal/services"
	"github.com/desertthunder/spotlist/internal/shared"
)

// AddAlbumResult contains the outcome of an add-album operation.
type AddAlbumResult struct {
	AlbumID  string   // Album matched by the search
	TrackIDs []string // Tracks appended, in album order
	Snapshot string   // Playlist snapshot after the add
}

// ReorderOpts configures a reorder.
type ReorderOpts struct {
	DryRun bool // Compute the order without touching the playlist
}

// ReorderResult contains the outcome of a reorder operation.
type ReorderResult struct {
	PlaylistID     string
	Original       []models.PlaylistEntry // Entries in playlist order
	Ordered        []models.PlaylistEntry // Entries in chronological order
	Skipped        int                    // Items without a track id
	RemoveSnapshot string
	AddSnapshot    string
	DryRun         bool
}

// PlaylistEditor defines the user-facing playlist workflows.
type PlaylistEditor interface {
	// AddAlbum searches for a single album by artist and title and appends its tracks to the playlist.
	AddAlbum(ctx context.Context, playlistID, artist, album string, progress chan<- ProgressUpdate) (*AddAlbumResult, error)

	// Reorder rewrites the playlist in chronological order by removing every track and adding them back sorted.
	Reorder(ctx context.Context, playlistID string, opts ReorderOpts, progress chan<- ProgressUpdate) (*ReorderResult, error)

	// Entries returns the playlist's entries, optionally in chronological order.
	Entries(ctx context.Context, playlistID string, sorted bool) ([]models.PlaylistEntry, error)
}

// PlaylistEngine implements PlaylistEditor.
type PlaylistEngine struct {
	spotify services.PlaylistService
	logger  *log.Logger
}

// NewPlaylistEngine creates a new PlaylistEngine over the provided service.
func NewPlaylistEngine(spotify services.PlaylistService, logger *log.Logger) *PlaylistEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &PlaylistEngine{spotify: spotify, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *PlaylistEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// AddAlbum appends the tracks of the album matching artist and album to the playlist.
//
// A failed search stops the operation before any track listing or playlist mutation.
func (e *PlaylistEngine) AddAlbum(ctx context.Context, playlistID, artist, album string, progress chan<- ProgressUpdate) (*AddAlbumResult, error) {
	if e.spotify == nil {
		return nil, fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, searchAlbumUpdate(1, 3, artist, album))
	albumID, err := e.spotify.SearchAlbum(ctx, artist, album)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, fetchAlbumTracksUpdate(2, 3, albumID))
	trackIDs, err := e.spotify.AlbumTracks(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if len(trackIDs) == 0 {
		return nil, fmt.Errorf("%w: album %s has no tracks", shared.ErrFetch, albumID)
	}

	e.sendProgress(progress, addTracksUpdate(3, 3, len(trackIDs)))
	snapshot, err := e.spotify.AddTracks(ctx, playlistID, trackIDs)
	if err != nil {
		return nil, err
	}

	return &AddAlbumResult{AlbumID: albumID, TrackIDs: trackIDs, Snapshot: snapshot}, nil
}

// Reorder sorts the playlist chronologically and rewrites it.
//
// Tracks are removed in their original order, then added back sorted. The two calls are not atomic:
// if the add fails the removed tracks are gone and the returned error says so.
func (e *PlaylistEngine) Reorder(ctx context.Context, playlistID string, opts ReorderOpts, progress chan<- ProgressUpdate) (*ReorderResult, error) {
	if e.spotify == nil {
		return nil, fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}

	result := &ReorderResult{PlaylistID: playlistID, DryRun: opts.DryRun}

	e.sendProgress(progress, fetchPlaylistUpdate(1, 4, playlistID))
	playlist, err := e.spotify.Playlist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	entries, skipped := Entries(playlist)
	if skipped > 0 {
		e.logger.Warn("skipping playlist items without a track id", "count", skipped)
	}
	result.Original = entries
	result.Skipped = skipped
	result.Ordered = OrderTracks(entries)

	e.sendProgress(progress, sortTracksUpdate(2, 4, result.Ordered))

	if len(entries) == 0 {
		e.logger.Info("playlist has no tracks to reorder", "playlist", playlistID)
		return result, nil
	}
	if opts.DryRun {
		return result, nil
	}

	originalIDs := models.IDs(result.Original)
	orderedIDs := models.IDs(result.Ordered)

	e.sendProgress(progress, removeTracksUpdate(3, 4, len(originalIDs)))
	result.RemoveSnapshot, err = e.spotify.RemoveTracks(ctx, playlistID, originalIDs)
	if err != nil {
		return result, err
	}

	e.sendProgress(progress, addTracksUpdate(4, 4, len(orderedIDs)))
	result.AddSnapshot, err = e.spotify.AddTracks(ctx, playlistID, orderedIDs)
	if err != nil {
		e.logger.Error("tracks were removed but could not be re-added", "playlist", playlistID, "tracks", orderedIDs)
		return result, fmt.Errorf("playlist %s left without its %d tracks: %w", playlistID, len(orderedIDs), err)
	}

	return result, nil
}

// Entries returns the playlist's entries in playlist order, or chronological order when sorted is set.
func (e *PlaylistEngine) Entries(ctx context.Context, playlistID string, sorted bool) ([]models.PlaylistEntry, error) {
	if e.spotify == nil {
		return nil, fmt.Errorf("%w: Spotify service not initialized", shared.ErrServiceUnavailable)
	}

	playlist, err := e.spotify.Playlist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	entries, _ := Entries(playlist)
	if sorted {
		return OrderTracks(entries), nil
	}
	return entries, nil
}
