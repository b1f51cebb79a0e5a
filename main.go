package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fedragon/go-organize/internal"
	"github.com/fedragon/go-organize/internal/core"
	"github.com/fedragon/go-organize/internal/metadata"
	"github.com/fedragon/go-organize/internal/models"
	"github.com/fedragon/go-organize/internal/progress"

	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrUsage = errors.New("usage error")

func main() {
	app := &cli.App{
		Name:      "organize-media",
		Usage:     "moves photos and videos into directories named after their capture date",
		ArgsUsage: "SOURCE_DIR",
		Flags:     flags(),
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "layout",
			Usage: "directory layout: year (y), month (m), year_month (y_m) or year/month (y/m); asked interactively when empty",
		},
		&cli.BoolFlag{
			Name:  "yes",
			Usage: "do not ask for confirmation",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "report what would be moved without touching any file",
		},
		&cli.StringFlag{
			Name:  "photo-errors",
			Value: "skip",
			Usage: "what to do with photos that cannot be decoded: skip or abort",
		},
		&cli.StringFlag{
			Name:  "prober",
			Value: "ffprobe",
			Usage: "how to read video metadata: ffprobe or mp4",
		},
		&cli.StringFlag{
			Name:  "ffprobe",
			Value: "ffprobe",
			Usage: "ffprobe binary",
		},
		&cli.BoolFlag{
			Name:  "no-progress",
			Usage: "do not display progress bars",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging",
		},
	}
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config(c)
	if err != nil {
		if errors.Is(err, ErrUsage) {
			_ = cli.ShowAppHelp(c)
		}
		return cli.Exit(err.Error(), 1)
	}

	err = internal.NewRunner(logger, cfg).Run(context.Background())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrAborted):
		return cli.Exit("Abort received, no images moved.", 1)
	case errors.Is(err, core.ErrNoMedia):
		return cli.Exit(err.Error(), 1)
	default:
		logger.Error("Organizing failed", zap.Error(err))
		return cli.Exit(err.Error(), 1)
	}
}

func config(c *cli.Context) (internal.Config, error) {
	if c.NArg() != 1 {
		return internal.Config{}, fmt.Errorf("%w: expected exactly one SOURCE_DIR argument, got %d", ErrUsage, c.NArg())
	}

	source, err := homedir.Expand(c.Args().First())
	if err != nil {
		return internal.Config{}, err
	}

	var layout models.Layout
	if s := c.String("layout"); s != "" {
		var ok bool
		if layout, ok = models.ParseLayout(s); !ok {
			return internal.Config{}, fmt.Errorf("%w: unknown layout %q", ErrUsage, s)
		}
	}

	policy, err := models.ParseErrorPolicy(c.String("photo-errors"))
	if err != nil {
		return internal.Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var prober metadata.Prober
	switch c.String("prober") {
	case "ffprobe":
		prober = &metadata.FFProbe{Binary: c.String("ffprobe")}
	case "mp4":
		prober = metadata.MP4Probe{}
	default:
		return internal.Config{}, fmt.Errorf("%w: unknown prober %q", ErrUsage, c.String("prober"))
	}

	return internal.Config{
		Source:      source,
		Layout:      layout,
		Confirmed:   c.Bool("yes"),
		DryRun:      c.Bool("dry-run"),
		PhotoErrors: policy,
		Prober:      prober,
		Progress:    progress.ForTerminal(os.Stderr, !c.Bool("no-progress")),
		In:          os.Stdin,
		Out:         os.Stdout,
	}, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
