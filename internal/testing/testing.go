// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/desertthunder/spotlist/internal/services"
)

// MockPlaylistService is a test double for [services.PlaylistService] that records every call.
type MockPlaylistService struct {
	AlbumID   string
	SearchErr error

	AlbumTrackIDs []string
	AlbumErr      error

	PlaylistResult *services.SpotifyPlaylist
	PlaylistErr    error

	AddSnapshot    string
	AddErr         error
	RemoveSnapshot string
	RemoveErr      error

	Calls   []string
	Added   [][]string
	Removed [][]string
}

func (m *MockPlaylistService) SearchAlbum(ctx context.Context, artist, album string) (string, error) {
	m.Calls = append(m.Calls, "search")
	if m.SearchErr != nil {
		return "", m.SearchErr
	}
	return m.AlbumID, nil
}

func (m *MockPlaylistService) AlbumTracks(ctx context.Context, albumID string) ([]string, error) {
	m.Calls = append(m.Calls, "album_tracks")
	if m.AlbumErr != nil {
		return nil, m.AlbumErr
	}
	return slices.Clone(m.AlbumTrackIDs), nil
}

func (m *MockPlaylistService) Playlist(ctx context.Context, playlistID string) (*services.SpotifyPlaylist, error) {
	m.Calls = append(m.Calls, "playlist")
	if m.PlaylistErr != nil {
		return nil, m.PlaylistErr
	}
	return m.PlaylistResult, nil
}

func (m *MockPlaylistService) AddTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error) {
	m.Calls = append(m.Calls, "add")
	m.Added = append(m.Added, slices.Clone(trackIDs))
	if m.AddErr != nil {
		return "", m.AddErr
	}
	return m.AddSnapshot, nil
}

func (m *MockPlaylistService) RemoveTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error) {
	m.Calls = append(m.Calls, "remove")
	m.Removed = append(m.Removed, slices.Clone(trackIDs))
	if m.RemoveErr != nil {
		return "", m.RemoveErr
	}
	return m.RemoveSnapshot, nil
}

func (m *MockPlaylistService) Name() string { return "mock" }

// NewPlaylist builds a playlist snapshot from entries.
func NewPlaylist(id string, entries ...services.SpotifyPlaylistTrack) *services.SpotifyPlaylist {
	p := &services.SpotifyPlaylist{ID: id, SnapshotID: "snap-0"}
	p.Tracks.Items = entries
	p.Tracks.Total = len(entries)
	return p
}

// NewEntry builds a playlist entry for a track on the given album.
func NewEntry(id, album, releaseDate, precision string, disc, track int) services.SpotifyPlaylistTrack {
	return services.SpotifyPlaylistTrack{
		Track: &services.SpotifyTrack{
			ID:          id,
			Name:        "Track " + id,
			DiscNumber:  disc,
			TrackNumber: track,
			Album: services.SpotifyAlbum{
				Name:                 album,
				ReleaseDate:          releaseDate,
				ReleaseDatePrecision: precision,
			},
		},
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
