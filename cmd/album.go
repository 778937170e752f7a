package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/spotlist/internal/shared"
	"github.com/urfave/cli/v3"
)

// AlbumAdd searches for an album and appends its tracks to the playlist.
//
// The album is given either with --artist and --album or as a single "Artist: Album" argument.
func (r *Runner) AlbumAdd(ctx context.Context, cmd *cli.Command) error {
	artist, album := cmd.String("artist"), cmd.String("album")

	if artist == "" && album == "" {
		search := cmd.StringArg("search")
		if search == "" {
			return fmt.Errorf("%w: provide --artist and --album or \"Artist: Album\"", shared.ErrMissingArgument)
		}

		var err error
		if artist, album, err = parseSearch(search); err != nil {
			return err
		}
	}

	if artist == "" || album == "" {
		return fmt.Errorf("%w: both artist and album are required", shared.ErrMissingArgument)
	}

	return r.Execute(ctx, Request{
		Mode:       ModeAddAlbum,
		PlaylistID: cmd.String("playlist"),
		Artist:     artist,
		Album:      album,
	})
}

// parseSearch splits "Artist: Album" on the first colon.
func parseSearch(s string) (artist, album string, err error) {
	artist, album, ok := strings.Cut(s, ":")
	artist, album = strings.TrimSpace(artist), strings.TrimSpace(album)
	if !ok || artist == "" || album == "" {
		return "", "", fmt.Errorf("%w: expected \"Artist: Album\", got %q", shared.ErrInvalidArgument, s)
	}
	return artist, album, nil
}
