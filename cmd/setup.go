package main

import (
	"context"

	"github.com/desertthunder/spotlist/internal/shared"
	"github.com/desertthunder/spotlist/internal/ui"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to --output.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)

	r.writePlain("%s\n", ui.Styles.OK("✓ Config written to "+path))
	r.writePlain("\nNext steps:\n")
	r.writePlain("1. Set spotify.access_token and spotify.playlist_id, or ACCESS_TOKEN and PLAYLIST_ID in .env\n")
	r.writePlain("2. Run 'spotlist setup check' to validate\n")
	return nil
}

// SetupCheck validates the resolved configuration without calling the API.
func (r *Runner) SetupCheck(ctx context.Context, cmd *cli.Command) error {
	config, err := r.prepare(cmd.String("playlist"))
	if err != nil {
		return err
	}

	r.writePlainHeader("Configuration")
	r.writePlain("Base URL:     %s\n", config.BaseURL())
	r.writePlain("Playlist:     %s\n", config.Spotify.PlaylistID)
	r.writePlain("Access token: %s\n", maskToken(config.Spotify.AccessToken))
	if config.Client.RateLimit > 0 {
		r.writePlain("Rate limit:   %.2f req/s\n", config.Client.RateLimit)
	} else {
		r.writePlain("Rate limit:   unlimited\n")
	}
	return r.writePlain("%s\n", ui.Styles.OK("✓ Configuration is valid"))
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "…" + token[len(token)-4:]
}
