// Package services implements the Spotify Web API calls behind [PlaylistService].
//
// # Transport
//
// [Client] issues GET/POST/DELETE requests against a base URL (the v1 REST root by default).
// Every request carries Accept and Content-Type set to application/json, and an
// Authorization header added by an [oauth2.Transport] over a static token source.
// The token is loaded once at startup and never refreshed; there is no interactive login.
//
// Requests are never retried and have no timeout beyond the underlying [http.Client].
// An optional [rate.Limiter] paces outgoing calls.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [*APIError] : non-2xx response with status code and provider message, wraps [shared.ErrAPIRequest]
//   - [shared.ErrFetch] : absent or malformed response body on a read path
//   - [shared.ErrAlbumNotFound] : album search returned nothing
//   - [shared.ErrAmbiguousAlbum] : album search returned more than one album
//   - [shared.ErrAddTracks], [shared.ErrRemoveTracks] : mutation response lacks a snapshot id
//
// # Limits
//
// Add and remove calls are single requests. Spotify accepts at most 100 tracks per call
// and only the first page of a playlist is read; larger inputs are rejected by the provider.
package services
