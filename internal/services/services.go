// package services defines interface PlaylistService for editing playlists over HTTP APIs
//
// Spotify
package services

import "context"

// PlaylistService defines the catalog and playlist operations the playlist workflows compose.
type PlaylistService interface {
	// SearchAlbum returns the id of the single album matching artist and album.
	SearchAlbum(ctx context.Context, artist, album string) (string, error)

	// AlbumTracks returns the album's track ids in provider order.
	AlbumTracks(ctx context.Context, albumID string) ([]string, error)

	// Playlist retrieves a playlist snapshot with its track entries.
	Playlist(ctx context.Context, playlistID string) (*SpotifyPlaylist, error)

	// AddTracks appends tracks to a playlist and returns the new snapshot id.
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error)

	// RemoveTracks removes tracks from a playlist and returns the new snapshot id.
	RemoveTracks(ctx context.Context, playlistID string, trackIDs []string) (string, error)

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}
