package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fedragon/go-organize/internal/fs"
	"github.com/fedragon/go-organize/internal/metadata"
	"github.com/fedragon/go-organize/internal/metrics"
	"github.com/fedragon/go-organize/internal/models"
	"github.com/fedragon/go-organize/internal/progress"
	"github.com/fedragon/go-organize/internal/report"

	"go.uber.org/zap"
)

var ErrNoMedia = errors.New("no media found")

// NoMediaError reports a source directory holding no photo or video. It
// matches ErrNoMedia.
type NoMediaError struct {
	Dir string
}

func (e *NoMediaError) Error() string {
	return fmt.Sprintf("No media found in %v", e.Dir)
}

func (e *NoMediaError) Is(target error) bool {
	return target == ErrNoMedia
}

type Mover interface {
	EnsureDir(dir string) error
	Move(sourceDir, name, destDir string) error
}

// Session organizes the photos and videos found directly under Source.
//
// It lists and classifies the directory, asks for confirmation and a layout
// (unless already given), then processes photos followed by videos, one file
// at a time. A fatal error stops the run where it is: files already moved
// stay moved.
type Session struct {
	Source      string
	Layout      models.Layout
	Confirmed   bool
	PhotoErrors models.ErrorPolicy
	Extractors  metadata.Extractors
	Mover       Mover
	Prompter    *Prompter
	Progress    progress.Factory
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
	Out         io.Writer
}

func (s *Session) Run(ctx context.Context) (*TransactionLog, error) {
	names, err := fs.List(s.Source)
	if err != nil {
		return nil, fmt.Errorf("non-valid directory: %w", err)
	}

	photos, videos := fs.Classify(names)
	where := s.Source
	if abs, err := filepath.Abs(s.Source); err == nil {
		where = abs
	}
	if len(photos) == 0 && len(videos) == 0 {
		return nil, &NoMediaError{Dir: where}
	}
	fmt.Fprintf(s.Out, "%d images and %d videos found in %v\n", len(photos), len(videos), where)

	if !s.Confirmed {
		if err := s.Prompter.Confirm(); err != nil {
			return nil, err
		}
	}

	layout := s.Layout
	if layout == 0 {
		if layout, err = s.Prompter.ChooseLayout(); err != nil {
			return nil, err
		}
	}

	logger := s.Logger.With(zap.String("source", s.Source), zap.Stringer("layout", layout))
	logger.Info("Organizing media", zap.Int("photos", len(photos)), zap.Int("videos", len(videos)))

	log := NewTransactionLog()
	for _, batch := range [][]models.MediaFile{photos, videos} {
		if err := s.process(ctx, logger, batch, layout, log); err != nil {
			return log, err
		}
	}

	fmt.Fprint(s.Out, log.Render())
	fmt.Fprintln(s.Out, report.Summary(log))
	return log, nil
}

func (s *Session) process(ctx context.Context, logger *zap.Logger, files []models.MediaFile, layout models.Layout, log *TransactionLog) error {
	if len(files) == 0 {
		return nil
	}

	kind := files[0].Kind
	stop := s.Metrics.Record(kind.String())
	defer stop()

	bar := s.Progress.New(kind.String()+"s", len(files))
	defer func() { _ = bar.Finish() }()

	for _, f := range files {
		if err := s.organize(ctx, logger, f, layout, log); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	return nil
}

func (s *Session) organize(ctx context.Context, logger *zap.Logger, f models.MediaFile, layout models.Layout, log *TransactionLog) error {
	path := filepath.Join(s.Source, f.Name)
	logger = logger.With(zap.String("file", f.Name), zap.Stringer("kind", f.Kind))

	extractor, err := s.Extractors.For(f.Kind)
	if err != nil {
		return err
	}

	date, ok, err := extractor.Extract(ctx, path)
	if err != nil {
		if errors.Is(err, metadata.ErrInvalidImage) && s.PhotoErrors == models.Skip {
			logger.Error("Invalid image, leaving it in place", zap.Error(err))
			s.Metrics.Skip()
			return nil
		}
		return fmt.Errorf("%v: %w", f.Name, err)
	}

	var captured *models.CaptureDate
	if ok {
		captured = &date
	} else {
		logger.Debug("Capture time unavailable")
		s.Metrics.Default()
	}

	dest, err := Resolve(s.Source, captured, layout)
	if err != nil {
		return err
	}
	if err := s.Mover.EnsureDir(dest); err != nil {
		return err
	}
	if err := s.Mover.Move(s.Source, f.Name, dest); err != nil {
		return fmt.Errorf("cannot move %v to %v: %w", f.Name, dest, err)
	}

	log.Record(dest, f.Name)
	s.Metrics.Move()
	return nil
}
