package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/nfrund/folio/internal/cms"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/database"
	"github.com/nfrund/folio/internal/domain"
	"github.com/nfrund/folio/internal/email"
	"github.com/nfrund/folio/internal/filesource"
)

// ContentSource is an opened content backend.
type ContentSource struct {
	Repo   domain.ContentRepository
	Writer domain.SubmissionWriter
	// Close releases the backend; may be nil.
	Close func(context.Context) error
	// Run performs background work (file watching) until ctx is done; may be nil.
	Run func(context.Context) error
}

// OpenSource connects to the content backend selected by CONTENT_SOURCE.
func OpenSource(ctx context.Context, cfg config.Provider) (*ContentSource, error) {
	switch cfg.GetContentSource() {
	case config.SourceCMS:
		repo := cms.NewRepository(cms.NewClientFromConfig(cfg))
		return &ContentSource{Repo: repo, Writer: repo}, nil

	case config.SourceSurreal:
		db, err := database.NewDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := database.DefineSchema(ctx, db); err != nil {
			_ = db.Close(ctx)
			return nil, err
		}
		store := database.NewContentStore(db)
		return &ContentSource{
			Repo:   store,
			Writer: store,
			Close:  func(ctx context.Context) error { return db.Close(ctx) },
		}, nil

	case config.SourceFile:
		src, err := filesource.New(afero.NewOsFs(), cfg.GetContentFile())
		if err != nil {
			return nil, err
		}
		cs := &ContentSource{Repo: src, Writer: src}
		if cfg.GetContentWatch() {
			cs.Run = src.Watch
		}
		return cs, nil

	default:
		return nil, fmt.Errorf("unknown content source %q", cfg.GetContentSource())
	}
}

// NewFromConfig opens the configured content source and email sender, builds
// the server and starts its background work. Background work stops when ctx is done.
func NewFromConfig(ctx context.Context, cfg config.Provider) (*Server, error) {
	source, err := OpenSource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open content source: %w", err)
	}
	slog.Info("Content source ready", "source", cfg.GetContentSource())

	emailer, err := email.NewEmailService(cfg)
	if err != nil {
		if source.Close != nil {
			_ = source.Close(ctx)
		}
		return nil, fmt.Errorf("failed to initialize email service: %w", err)
	}

	s := New(Deps{
		Cfg:     cfg,
		Repo:    source.Repo,
		Writer:  source.Writer,
		Emailer: emailer,
	})
	if source.Close != nil {
		s.OnClose(source.Close)
	}

	if err := s.StartSubscribers(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, fmt.Errorf("failed to start subscribers: %w", err)
	}

	if source.Run != nil {
		go func() {
			if err := source.Run(ctx); err != nil {
				slog.Error("Content source background task stopped", "error", err)
			}
		}()
	}

	s.RegisterRoutes()
	return s, nil
}
