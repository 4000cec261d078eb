package bibgo

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/bibgo/merge"
)

// Logger wraps slog.Logger with catalog-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new logger with the given handler.
// If handler is nil, it uses a text handler writing to stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger returns a logger that discards all output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Higher than any real level
	})

	return &Logger{Logger: slog.New(handler)}
}

// WithCollection returns a logger with the collection name attached to every
// entry.
func (l *Logger) WithCollection(name string) *Logger {
	return &Logger{Logger: l.Logger.With("collection", name)}
}

// LogAdd logs a record insertion.
func (l *Logger) LogAdd(ctx context.Context, collection, identifier string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add record failed",
			"collection", collection,
			"identifier", identifier,
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "record added",
		"collection", collection,
		"identifier", identifier,
	)
}

// LogUpdate logs a record replacement.
func (l *Logger) LogUpdate(ctx context.Context, collection, identifier string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "update record failed",
			"collection", collection,
			"identifier", identifier,
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "record updated",
		"collection", collection,
		"identifier", identifier,
	)
}

// LogRemove logs a record removal.
func (l *Logger) LogRemove(ctx context.Context, collection, identifier string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "remove record failed",
			"collection", collection,
			"identifier", identifier,
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "record removed",
		"collection", collection,
		"identifier", identifier,
	)
}

// LogCollection logs a collection lifecycle change (add, remove, import).
func (l *Logger) LogCollection(ctx context.Context, action, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "collection "+action+" failed",
			"collection", name,
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "collection "+action,
		"collection", name,
	)
}

// LogQuery logs an index lookup.
func (l *Logger) LogQuery(ctx context.Context, term string, postings int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "query failed",
			"term", term,
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "query completed",
		"term", term,
		"postings", postings,
	)
}

// LogSearch logs a substring scan.
func (l *Logger) LogSearch(ctx context.Context, term string, hits int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"term", term,
			"error", err,
		)
		return
	}

	l.DebugContext(ctx, "search completed",
		"term", term,
		"hits", hits,
	)
}

// LogMerge logs an in-catalog collection merge.
func (l *Logger) LogMerge(ctx context.Context, target, source string, stats merge.Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "merge failed",
			"target", target,
			"source", source,
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "collections merged",
		"target", target,
		"source", source,
		"added", stats.Added,
		"replaced", stats.Replaced,
		"kept", stats.Kept,
		"skipped", stats.Skipped,
	)
}

// LogImport logs a bulk record import. Partial failures are logged as a
// warning with the failure count.
func (l *Logger) LogImport(ctx context.Context, collection string, imported, failed int, err error) {
	if err != nil && imported == 0 {
		l.ErrorContext(ctx, "import failed",
			"collection", collection,
			"failed", failed,
			"error", err,
		)
		return
	}

	if failed > 0 {
		l.WarnContext(ctx, "import completed with failures",
			"collection", collection,
			"imported", imported,
			"failed", failed,
		)
		return
	}

	l.InfoContext(ctx, "import completed",
		"collection", collection,
		"imported", imported,
	)
}

// LogExport logs a collection export.
func (l *Logger) LogExport(ctx context.Context, collection string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"collection", collection,
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "collection exported",
		"collection", collection,
		"bytes", bytes,
	)
}

// LogRebuild logs a full index rebuild.
func (l *Logger) LogRebuild(ctx context.Context, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index rebuild failed",
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "index rebuilt",
		"records", records,
	)
}

// LogArchive logs an archive round trip (export or import).
func (l *Logger) LogArchive(ctx context.Context, action string, seq uint64, collections int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "archive "+action+" failed",
			"error", err,
		)
		return
	}

	l.InfoContext(ctx, "archive "+action+" completed",
		"seq", seq,
		"collections", collections,
	)
}
