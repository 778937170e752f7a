// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func playlistFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "playlist",
		Aliases: []string{"p"},
		Usage:   "Playlist ID (defaults to PLAYLIST_ID or spotify.playlist_id)",
	}
}

// albumCommand handles album operations
func albumCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "album",
		Usage: "Album operations",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Search for an album and append its tracks to the playlist",
				UsageText: `spotlist album add --artist "Artist" --album "Album"` + "\n" + `spotlist album add "Artist: Album"`,
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:      "search",
						UsageText: `"Artist: Album"`,
					},
				},
				Flags: []cli.Flag{
					playlistFlag(),
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Artist name",
					},
					&cli.StringFlag{
						Name:  "album",
						Usage: "Album title",
					},
				},
				Action: r.AlbumAdd,
			},
		},
	}
}

// playlistCommand handles playlist operations
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "reorder",
				Usage: "Rewrite the playlist ordered by release date, album, disc and track",
				Flags: []cli.Flag{
					playlistFlag(),
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "Print the new order without modifying the playlist",
					},
				},
				Action: r.PlaylistReorder,
			},
			{
				Name:  "tracks",
				Usage: "List the playlist's tracks",
				Flags: []cli.Flag{
					playlistFlag(),
					&cli.BoolFlag{
						Name:  "sorted",
						Usage: "List tracks in release order",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: txt, csv or json",
						Value:   "txt",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.PlaylistTracks,
			},
		},
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a config.toml template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path of the file to create",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:   "check",
				Usage:  "Validate the resolved configuration",
				Flags:  []cli.Flag{playlistFlag()},
				Action: r.SetupCheck,
			},
		},
	}
}
