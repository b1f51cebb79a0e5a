package internal

import (
	"context"
	"io"
	"time"

	"github.com/fedragon/go-organize/internal/core"
	"github.com/fedragon/go-organize/internal/fs"
	"github.com/fedragon/go-organize/internal/metadata"
	"github.com/fedragon/go-organize/internal/metrics"
	"github.com/fedragon/go-organize/internal/models"
	"github.com/fedragon/go-organize/internal/progress"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	Source      string
	Layout      models.Layout
	Confirmed   bool
	DryRun      bool
	PhotoErrors models.ErrorPolicy
	Prober      metadata.Prober
	Progress    progress.Factory
	In          io.Reader
	Out         io.Writer
}

type Runner struct {
	logger *zap.Logger
	cfg    Config
}

func NewRunner(logger *zap.Logger, cfg Config) *Runner {
	return &Runner{
		logger: logger.With(zap.String("run_id", uuid.NewString())),
		cfg:    cfg,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	mx := metrics.NewMetrics()
	defer func() {
		r.logger.Info("Elapsed time", zap.Duration("elapsed", time.Since(start)), zap.Stringer("metrics", mx))
	}()

	if r.cfg.DryRun {
		r.logger.Info("Running in DRY-RUN mode: files will not be moved")
	}

	session := &core.Session{
		Source:      r.cfg.Source,
		Layout:      r.cfg.Layout,
		Confirmed:   r.cfg.Confirmed,
		PhotoErrors: r.cfg.PhotoErrors,
		Extractors: metadata.Extractors{
			Photo: &metadata.PhotoExtractor{Logger: r.logger},
			Video: &metadata.VideoExtractor{Prober: r.cfg.Prober, Logger: r.logger},
		},
		Mover:    &fs.Mover{Logger: r.logger, DryRun: r.cfg.DryRun},
		Prompter: core.NewPrompter(r.cfg.In, r.cfg.Out),
		Progress: r.cfg.Progress,
		Metrics:  mx,
		Logger:   r.logger,
		Out:      r.cfg.Out,
	}

	_, err := session.Run(ctx)
	return err
}
