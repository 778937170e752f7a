package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotlist/internal/formatter"
	"github.com/urfave/cli/v3"
)

// PlaylistReorder rewrites the playlist in release order.
func (r *Runner) PlaylistReorder(ctx context.Context, cmd *cli.Command) error {
	return r.Execute(ctx, Request{
		Mode:       ModeReorder,
		PlaylistID: cmd.String("playlist"),
		DryRun:     cmd.Bool("dry-run"),
	})
}

// PlaylistTracks lists the playlist's tracks as text, CSV or JSON.
func (r *Runner) PlaylistTracks(ctx context.Context, cmd *cli.Command) error {
	config, err := r.prepare(cmd.String("playlist"))
	if err != nil {
		return err
	}

	entries, err := r.engine.Entries(ctx, config.Spotify.PlaylistID, cmd.Bool("sorted"))
	if err != nil {
		return fmt.Errorf("failed to list playlist tracks: %w", err)
	}

	data, err := formatter.Entries(entries, cmd.String("format"), cmd.Bool("pretty"))
	if err != nil {
		return err
	}

	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
