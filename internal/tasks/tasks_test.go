package tasks

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/desertthunder/spotlist/internal/services"
	"github.com/desertthunder/spotlist/internal/shared"
	tu "github.com/desertthunder/spotlist/internal/testing"
)

func newEngine(mock *tu.MockPlaylistService) *PlaylistEngine {
	return NewPlaylistEngine(mock, shared.NewLogger(io.Discard))
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPlaylistEngine(t *testing.T) {
	t.Run("Implements PlaylistEditor", func(t *testing.T) {
		var _ PlaylistEditor = newEngine(&tu.MockPlaylistService{})
	})

	t.Run("Nil Service", func(t *testing.T) {
		engine := NewPlaylistEngine(nil, nil)

		if _, err := engine.AddAlbum(context.Background(), "pl", "a", "b", nil); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
		if _, err := engine.Reorder(context.Background(), "pl", ReorderOpts{}, nil); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
		if _, err := engine.Entries(context.Background(), "pl", false); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("AddAlbum", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			mock := &tu.MockPlaylistService{
				AlbumID:       "alb",
				AlbumTrackIDs: []string{"t1", "t2", "t3"},
				AddSnapshot:   "snap-1",
			}

			result, err := newEngine(mock).AddAlbum(context.Background(), "pl", "Artist", "Album", nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.AlbumID != "alb" {
				t.Errorf("expected album alb, got %s", result.AlbumID)
			}
			if result.Snapshot != "snap-1" {
				t.Errorf("expected snapshot snap-1, got %s", result.Snapshot)
			}
			if len(mock.Added) != 1 || !equalStrings(mock.Added[0], []string{"t1", "t2", "t3"}) {
				t.Errorf("expected album tracks to be added in order, got %v", mock.Added)
			}
			if !equalStrings(mock.Calls, []string{"search", "album_tracks", "add"}) {
				t.Errorf("unexpected call sequence %v", mock.Calls)
			}
		})

		t.Run("search failure stops before any other call", func(t *testing.T) {
			mock := &tu.MockPlaylistService{SearchErr: shared.ErrAlbumNotFound}

			_, err := newEngine(mock).AddAlbum(context.Background(), "pl", "Nobody", "Nothing", nil)
			if !errors.Is(err, shared.ErrAlbumNotFound) {
				t.Errorf("expected ErrAlbumNotFound, got %v", err)
			}
			if !equalStrings(mock.Calls, []string{"search"}) {
				t.Errorf("expected only a search call, got %v", mock.Calls)
			}
		})

		t.Run("ambiguous search", func(t *testing.T) {
			mock := &tu.MockPlaylistService{SearchErr: shared.ErrAmbiguousAlbum}

			_, err := newEngine(mock).AddAlbum(context.Background(), "pl", "a", "b", nil)
			if !errors.Is(err, shared.ErrAmbiguousAlbum) {
				t.Errorf("expected ErrAmbiguousAlbum, got %v", err)
			}
			if len(mock.Added) != 0 {
				t.Error("expected no add call")
			}
		})

		t.Run("album without tracks", func(t *testing.T) {
			mock := &tu.MockPlaylistService{AlbumID: "alb", AlbumTrackIDs: []string{}}

			_, err := newEngine(mock).AddAlbum(context.Background(), "pl", "a", "b", nil)
			if !errors.Is(err, shared.ErrFetch) {
				t.Errorf("expected ErrFetch, got %v", err)
			}
			if len(mock.Added) != 0 {
				t.Error("expected no add call")
			}
		})

		t.Run("add failure propagates", func(t *testing.T) {
			mock := &tu.MockPlaylistService{
				AlbumID:       "alb",
				AlbumTrackIDs: []string{"t1"},
				AddErr:        shared.ErrAddTracks,
			}

			_, err := newEngine(mock).AddAlbum(context.Background(), "pl", "a", "b", nil)
			if !errors.Is(err, shared.ErrAddTracks) {
				t.Errorf("expected ErrAddTracks, got %v", err)
			}
		})

		t.Run("emits progress", func(t *testing.T) {
			mock := &tu.MockPlaylistService{AlbumID: "alb", AlbumTrackIDs: []string{"t1"}, AddSnapshot: "s"}
			progress := make(chan ProgressUpdate, 10)

			if _, err := newEngine(mock).AddAlbum(context.Background(), "pl", "a", "b", progress); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			close(progress)

			var phases []string
			for update := range progress {
				phases = append(phases, update.Phase.String())
			}
			want := []string{"search_album", "fetch_album_tracks", "add_tracks"}
			if !equalStrings(phases, want) {
				t.Errorf("expected phases %v, got %v", want, phases)
			}
		})
	})

	t.Run("Reorder", func(t *testing.T) {
		t.Run("year precision ties break on album name", func(t *testing.T) {
			mock := &tu.MockPlaylistService{
				PlaylistResult: tu.NewPlaylist("pl",
					tu.NewEntry("b-track", "B", "2020-01-01", "day", 1, 2),
					tu.NewEntry("a-track", "A", "2020", "year", 1, 1),
				),
				RemoveSnapshot: "snap-r",
				AddSnapshot:    "snap-a",
			}

			result, err := newEngine(mock).Reorder(context.Background(), "pl", ReorderOpts{}, nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !equalStrings(mock.Calls, []string{"playlist", "remove", "add"}) {
				t.Errorf("unexpected call sequence %v", mock.Calls)
			}
			if !equalStrings(mock.Removed[0], []string{"b-track", "a-track"}) {
				t.Errorf("expected removal in original order, got %v", mock.Removed[0])
			}
			if !equalStrings(mock.Added[0], []string{"a-track", "b-track"}) {
				t.Errorf("expected sorted add order, got %v", mock.Added[0])
			}
			if result.RemoveSnapshot != "snap-r" || result.AddSnapshot != "snap-a" {
				t.Errorf("unexpected snapshots %s / %s", result.RemoveSnapshot, result.AddSnapshot)
			}
		})

		t.Run("dry run does not mutate", func(t *testing.T) {
			mock := &tu.MockPlaylistService{
				PlaylistResult: tu.NewPlaylist("pl",
					tu.NewEntry("new", "New", "2021-05-01", "day", 1, 1),
					tu.NewEntry("old", "Old", "1970", "year", 1, 1),
				),
			}

			result, err := newEngine(mock).Reorder(context.Background(), "pl", ReorderOpts{DryRun: true}, nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !result.DryRun {
				t.Error("expected dry run result")
			}
			if len(mock.Removed) != 0 || len(mock.Added) != 0 {
				t.Error("dry run must not remove or add tracks")
			}
			if result.Ordered[0].ID != "old" {
				t.Errorf("expected old track first, got %s", result.Ordered[0].ID)
			}
		})

		t.Run("empty playlist is a no-op", func(t *testing.T) {
			mock := &tu.MockPlaylistService{PlaylistResult: tu.NewPlaylist("pl")}

			result, err := newEngine(mock).Reorder(context.Background(), "pl", ReorderOpts{}, nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(result.Ordered) != 0 {
				t.Errorf("expected no entries, got %d", len(result.Ordered))
			}
			if !equalStrings(mock.Calls, []string{"playlist"}) {
				t.Errorf("expected only a playlist fetch, got %v", mock.Calls)
			}
		})

		t.Run("skips unavailable items", func(t *testing.T) {
			mock := &tu.MockPlaylistService{
				PlaylistResult: tu.NewPlaylist("pl",
					tu.NewEntry("x", "X", "2000", "year", 1, 1),
					services.SpotifyPlaylistTrack{Track: nil},
				),
				RemoveSnapshot: "r",
				AddSnapshot:    "a",
			}

			result, err := newEngine(mock).Reorder(context.Background(), "pl", ReorderOpts{}, nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Skipped != 1 {
				t.Errorf("expected 1 skipped item, got %d", result.Skipped)
			}
			if !equalStrings(mock.Removed[0], []string{"x"}) {
				t.Errorf("unexpected removal %v", mock.Removed[0])
			}
		})

		t.Run("fetch failure", func(t *testing.T) {
			apiErr := &services.APIError{StatusCode: 404, Message: "Not found"}
			mock := &tu.MockPlaylistService{PlaylistErr: apiErr}

			_, err := newEngine(mock).Reorder(context.Background(), "pl", ReorderOpts{}, nil)
			var got *services.APIError
			if !errors.As(err, &got) || got.StatusCode != 404 {
				t.Errorf("expected api error to propagate, got %v", err)
			}
		})

		t.Run("remove failure skips add", func(t *testing.T) {
			mock := &tu.MockPlaylistService{
				PlaylistResult: tu.NewPlaylist("pl", tu.NewEntry("x", "X", "2000", "year", 1, 1)),
				RemoveErr:      shared.ErrRemoveTracks,
			}

			_, err := newEngine(mock).Reorder(context.Background(), "pl", ReorderOpts{}, nil)
			if !errors.Is(err, shared.ErrRemoveTracks) {
				t.Errorf("expected ErrRemoveTracks, got %v", err)
			}
			if len(mock.Added) != 0 {
				t.Error("expected no add after failed removal")
			}
		})

		t.Run("add failure after removal is reported", func(t *testing.T) {
			apiErr := &services.APIError{StatusCode: 500, Message: "Server error"}
			mock := &tu.MockPlaylistService{
				PlaylistResult: tu.NewPlaylist("pl", tu.NewEntry("x", "X", "2000", "year", 1, 1)),
				RemoveSnapshot: "r",
				AddErr:         apiErr,
			}

			result, err := newEngine(mock).Reorder(context.Background(), "pl", ReorderOpts{}, nil)
			var got *services.APIError
			if !errors.As(err, &got) {
				t.Fatalf("expected wrapped api error, got %v", err)
			}
			if result == nil || result.RemoveSnapshot != "r" {
				t.Error("expected partial result with removal snapshot")
			}
		})
	})

	t.Run("Entries", func(t *testing.T) {
		mock := &tu.MockPlaylistService{
			PlaylistResult: tu.NewPlaylist("pl",
				tu.NewEntry("2", "Second", "2010-06", "month", 1, 1),
				tu.NewEntry("1", "First", "2010-05-30", "day", 1, 1),
			),
		}
		engine := newEngine(mock)

		unsorted, err := engine.Entries(context.Background(), "pl", false)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if unsorted[0].ID != "2" {
			t.Errorf("expected playlist order, got %s first", unsorted[0].ID)
		}

		sorted, err := engine.Entries(context.Background(), "pl", true)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sorted[0].ID != "1" {
			t.Errorf("expected chronological order, got %s first", sorted[0].ID)
		}
		if sorted[1].ReleaseDate != "2010-06-01" {
			t.Errorf("expected month precision normalized, got %s", sorted[1].ReleaseDate)
		}
	})
}
