package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotlist/internal/formatter"
	"github.com/desertthunder/spotlist/internal/services"
	"github.com/desertthunder/spotlist/internal/shared"
	"github.com/desertthunder/spotlist/internal/tasks"
	"github.com/desertthunder/spotlist/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	spotify    services.PlaylistService
	engine     *tasks.PlaylistEngine
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	errOutput  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// A nil Config is resolved from the --config and --env-file flags when a command runs.
// A nil Spotify service is built from the resolved config on first use.
type RunnerOpts struct {
	Config     *shared.Config
	Spotify    services.PlaylistService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	ErrOutput  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		spotify:    opts.Spotify,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		errOutput:  opts.ErrOutput,
	}
}

// Command builds the root command.
func (r *Runner) Command() *cli.Command {
	return &cli.Command{
		Name:      "spotlist",
		Usage:     "Add albums to a Spotify playlist and keep it in release order",
		Version:   "0.1.0",
		Writer:    r.output,
		ErrWriter: r.errOutput,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a dotenv file with ACCESS_TOKEN and PLAYLIST_ID",
				Value: ".env",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before:   r.before,
		Commands: r.register(),
	}
}

// before resolves configuration once per invocation and tags the logger with a run id.
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if r.config == nil {
		config, err := shared.Resolve(cmd.String("config"), cmd.String("env-file"))
		if err != nil {
			return ctx, err
		}
		r.config = config
	}

	level := r.config.LogLevel()
	if cmd.Bool("debug") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)
	r.logger = shared.WithLogger(r.logger, "run", shared.GenerateID())
	return ctx, nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		albumCommand, playlistCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Mode selects the workflow run by [Runner.Execute].
type Mode int

const (
	ModeAddAlbum Mode = iota
	ModeReorder
)

func (m Mode) String() string {
	switch m {
	case ModeAddAlbum:
		return "add_album"
	case ModeReorder:
		return "reorder"
	default:
		return "unknown"
	}
}

// Request describes one workflow invocation.
type Request struct {
	Mode       Mode
	PlaylistID string // Overrides the configured playlist when set
	Artist     string
	Album      string
	DryRun     bool
}

// Execute runs the workflow selected by req.Mode against the configured playlist.
func (r *Runner) Execute(ctx context.Context, req Request) error {
	config, err := r.prepare(req.PlaylistID)
	if err != nil {
		return err
	}
	playlistID := config.Spotify.PlaylistID

	r.logger.Debug("executing", "mode", req.Mode, "playlist", playlistID)

	progress, wait := r.watchProgress()
	defer wait()

	switch req.Mode {
	case ModeAddAlbum:
		result, err := r.engine.AddAlbum(ctx, playlistID, req.Artist, req.Album, progress)
		wait()
		if err != nil {
			return err
		}
		return r.writePlain("%s\n", ui.Styles.OK("[Success] tracks added - "+result.Snapshot))
	case ModeReorder:
		result, err := r.engine.Reorder(ctx, playlistID, tasks.ReorderOpts{DryRun: req.DryRun}, progress)
		wait()
		if err != nil {
			if result != nil && result.RemoveSnapshot != "" {
				r.writePlain("%s\n", ui.Styles.Warn("[Partial] tracks deleted - "+result.RemoveSnapshot))
			}
			return err
		}
		return r.writeReorder(result)
	default:
		return fmt.Errorf("%w: unknown mode %d", shared.ErrInvalidArgument, req.Mode)
	}
}

func (r *Runner) writeReorder(result *tasks.ReorderResult) error {
	if len(result.Original) == 0 {
		return r.writePlain("%s\n", ui.Styles.Warn("playlist "+result.PlaylistID+" has no tracks to reorder"))
	}

	if result.DryRun {
		r.writePlainHeader(fmt.Sprintf("Dry run: %s (%d tracks)", result.PlaylistID, len(result.Ordered)))
		return r.writePlain("%s", formatter.EntriesToText(result.Ordered))
	}

	if err := r.writePlain("%s\n", ui.Styles.OK("[Success] tracks deleted - "+result.RemoveSnapshot)); err != nil {
		return err
	}
	return r.writePlain("%s\n", ui.Styles.OK("[Success] tracks added - "+result.AddSnapshot))
}

// prepare validates the resolved configuration, applying a playlist override,
// and builds the Spotify service and engine on first use.
func (r *Runner) prepare(playlistID string) (*shared.Config, error) {
	if r.config == nil {
		r.config = shared.DefaultConfig()
	}

	config := *r.config
	if playlistID != "" {
		config.Spotify.PlaylistID = playlistID
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if r.spotify == nil {
		client := services.NewClient(
			config.BaseURL(),
			config.Spotify.AccessToken,
			services.WithHTTPClient(r.httpClient),
			services.WithRateLimit(config.Client.RateLimit),
		)
		r.spotify = services.NewSpotifyService(client, r.logger)
	}
	if r.engine == nil {
		r.engine = tasks.NewPlaylistEngine(r.spotify, r.logger)
	}

	return &config, nil
}

// watchProgress prints progress updates until the returned wait func is called.
//
// wait closes the channel and blocks until every buffered update is written; it is safe to call more than once.
func (r *Runner) watchProgress() (chan<- tasks.ProgressUpdate, func()) {
	progress := make(chan tasks.ProgressUpdate, 8)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Debug("progress", "phase", update.Phase, "step", update.Step, "total", update.Total)
			r.writePlain("%s\n", ui.Styles.Help(fmt.Sprintf("→ [%d/%d] %s", update.Step, update.Total, update.Message)))
		}
	}()

	closed := false
	return progress, func() {
		if closed {
			return
		}
		closed = true
		close(progress)
		<-done
	}
}

// ReportError prints err the way the top-level handler reports every failure.
func (r *Runner) ReportError(err error) {
	if err == nil {
		return
	}
	r.logger.Debug("command failed", "error", err)
	fmt.Fprintln(r.errOutput, ui.Styles.Err(describeError(err)))
}

// describeError renders errors carrying an HTTP response as "<status> <message>"
// and everything else as its raw message.
func describeError(err error) string {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%d %s", apiErr.StatusCode, apiErr.Message)
	}
	return err.Error()
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
