package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrFetch              = fmt.Errorf("malformed or empty response")

	// Search errors
	ErrAlbumNotFound  = fmt.Errorf("album not found")
	ErrAmbiguousAlbum = fmt.Errorf("more than one album found")

	// Playlist mutation errors
	ErrAddTracks    = fmt.Errorf("error adding items to playlist")
	ErrRemoveTracks = fmt.Errorf("error removing items from playlist")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
