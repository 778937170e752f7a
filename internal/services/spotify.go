// Spotify API implementation of [PlaylistService]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotlist/internal/shared"
)

// TrackURIPrefix qualifies a bare track id into a track handle.
const TrackURIPrefix = "spotify:track:"

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	AlbumType            string          `json:"album_type"`
	Artists              []SpotifyArtist `json:"artists"`
	ReleaseDate          string          `json:"release_date"`
	ReleaseDatePrecision string          `json:"release_date_precision"` // year, month or day
	TotalTracks          int             `json:"total_tracks"`
	URI                  string          `json:"uri"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Artists     []SpotifyArtist `json:"artists"`
	Album       SpotifyAlbum    `json:"album"`
	DiscNumber  int             `json:"disc_number"`
	TrackNumber int             `json:"track_number"`
	DurationMS  int             `json:"duration_ms"`
	URI         string          `json:"uri"`
}

// SpotifySimpleTrack is the track object nested in album track listings.
type SpotifySimpleTrack struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DiscNumber  int    `json:"disc_number"`
	TrackNumber int    `json:"track_number"`
}

// SpotifyPlaylistTrack represents a track within a playlist context.
//
// Track is nil for items Spotify can no longer resolve.
type SpotifyPlaylistTrack struct {
	AddedAt string        `json:"added_at"`
	Track   *SpotifyTrack `json:"track"`
}

type playlistTracks struct {
	Total int                    `json:"total"`
	Items []SpotifyPlaylistTrack `json:"items"`
}

// SpotifyPlaylist represents a Spotify playlist snapshot.
type SpotifyPlaylist struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	SnapshotID string         `json:"snapshot_id"`
	Tracks     playlistTracks `json:"tracks"`
}

type albumPage struct {
	Items []SpotifyAlbum `json:"items"`
	Total int            `json:"total"`
}

type searchResponse struct {
	Albums *albumPage `json:"albums"`
}

type albumTracksResponse struct {
	Items []SpotifySimpleTrack `json:"items"`
}

type snapshotResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

// TrackRef is a single entry of a track removal payload.
type TrackRef struct {
	URI string `json:"uri"`
}

// RemoveRequest is the body of DELETE /playlists/{id}/tracks.
type RemoveRequest struct {
	Tracks []TrackRef `json:"tracks"`
}

// TrackURI returns the fully-qualified handle for a track id.
func TrackURI(id string) string {
	return TrackURIPrefix + id
}

// NewRemoveRequest builds the removal payload for trackIDs, preserving order.
func NewRemoveRequest(trackIDs []string) RemoveRequest {
	refs := make([]TrackRef, 0, len(trackIDs))
	for _, id := range trackIDs {
		refs = append(refs, TrackRef{URI: TrackURI(id)})
	}
	return RemoveRequest{Tracks: refs}
}

// SpotifyService implements [PlaylistService] on top of a [Client].
type SpotifyService struct {
	client *Client
	logger *log.Logger
}

// NewSpotifyService creates a Spotify service issuing requests through client.
func NewSpotifyService(client *Client, logger *log.Logger) *SpotifyService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SpotifyService{client: client, logger: logger}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// SearchAlbum finds the single album matching artist and album and returns its id.
//
// Zero matches fail with [shared.ErrAlbumNotFound], several with [shared.ErrAmbiguousAlbum].
// On a match the album's tracks are fetched once before returning; that listing is discarded.
func (s *SpotifyService) SearchAlbum(ctx context.Context, artist, album string) (string, error) {
	endpoint := fmt.Sprintf("/search?type=artist,album&q=artist:%s+album:%s",
		encodeComponent(artist), encodeComponent(album))

	var response searchResponse
	if err := s.client.Get(ctx, endpoint, &response); err != nil {
		return "", err
	}

	if response.Albums == nil {
		return "", fmt.Errorf("%w: error getting albums data", shared.ErrFetch)
	}

	items := response.Albums.Items
	switch {
	case len(items) == 0:
		return "", fmt.Errorf("%w: %s - %s", shared.ErrAlbumNotFound, artist, album)
	case len(items) > 1:
		return "", fmt.Errorf("%w: %d results for %s - %s", shared.ErrAmbiguousAlbum, len(items), artist, album)
	}

	id := items[0].ID
	s.logger.Debug("album found", "id", id, "name", items[0].Name)

	if _, err := s.AlbumTracks(ctx, id); err != nil {
		return "", err
	}

	return id, nil
}

// AlbumTracks returns the album's track ids in provider order.
func (s *SpotifyService) AlbumTracks(ctx context.Context, albumID string) ([]string, error) {
	endpoint := fmt.Sprintf("/albums/%s/tracks", url.PathEscape(albumID))

	var response albumTracksResponse
	if err := s.client.Get(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	if response.Items == nil {
		return nil, fmt.Errorf("%w: error getting tracks for album %s", shared.ErrFetch, albumID)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		ids = append(ids, item.ID)
	}
	return ids, nil
}

// Playlist retrieves a playlist snapshot by ID. Only the first page of tracks is returned.
func (s *SpotifyService) Playlist(ctx context.Context, playlistID string) (*SpotifyPlaylist, error) {
	endpoint := fmt.Sprintf("/playlists/%s", url.PathEscape(playlistID))

	var playlist SpotifyPlaylist
	if err := s.client.Get(ctx, endpoint, &playlist); err != nil {
		return nil, err
	}

	if playlist.ID == "" && playlist.Tracks.Items == nil {
		return nil, fmt.Errorf("%w: error getting playlist %s", shared.ErrFetch, playlistID)
	}

	return &playlist, nil
}

// AddTracks appends trackIDs to the playlist in a single request and returns the new snapshot id.
func (s *SpotifyService) AddTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error) {
	if len(trackIDs) == 0 {
		return "", fmt.Errorf("%w: no tracks to add", shared.ErrInvalidInput)
	}

	uris := make([]string, 0, len(trackIDs))
	for _, id := range trackIDs {
		uris = append(uris, TrackURI(id))
	}
	endpoint := fmt.Sprintf("/playlists/%s/tracks?uris=%s", url.PathEscape(playlistID), strings.Join(uris, ","))

	var response snapshotResponse
	if err := s.client.Post(ctx, endpoint, &response); err != nil {
		return "", err
	}

	if response.SnapshotID == "" {
		return "", fmt.Errorf("%w: response has no snapshot_id", shared.ErrAddTracks)
	}

	s.logger.Info("tracks added", "count", len(trackIDs), "snapshot", response.SnapshotID)
	return response.SnapshotID, nil
}

// RemoveTracks deletes every occurrence of trackIDs from the playlist in a single request
// and returns the new snapshot id.
func (s *SpotifyService) RemoveTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error) {
	if len(trackIDs) == 0 {
		return "", fmt.Errorf("%w: no tracks to remove", shared.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("/playlists/%s/tracks", url.PathEscape(playlistID))

	var response snapshotResponse
	if err := s.client.Delete(ctx, endpoint, NewRemoveRequest(trackIDs), &response); err != nil {
		return "", err
	}

	if response.SnapshotID == "" {
		return "", fmt.Errorf("%w: response has no snapshot_id", shared.ErrRemoveTracks)
	}

	s.logger.Info("tracks deleted", "count", len(trackIDs), "snapshot", response.SnapshotID)
	return response.SnapshotID, nil
}

// encodeComponent percent-encodes s for use inside a query value, with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
