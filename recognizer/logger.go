package recognizer

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with recognizer-specific context. Structured
// logging with consistent field names lets downstream log processors filter
// on "matches", "cluster_size", etc. without parsing message text.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is nil,
// uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger returns a Logger that discards all output. This is the default
// for a Recognizer constructed without WithLogger: library consumers never
// have to configure logging to get correct behavior.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable: above any real level
	}))}
}

// WithMatchCount adds a match-count field to the logger.
func (l *Logger) WithMatchCount(n int) *Logger {
	return &Logger{Logger: l.Logger.With("matches", n)}
}

// LogEmptyInput logs a Recognize call that received no matches. This is a
// benign empty-result path (§7): it is never logged above Debug.
func (l *Logger) LogEmptyInput(ctx context.Context) {
	l.DebugContext(ctx, "recognize: no matches, nothing to do")
}

// LogGraphBuilt logs the size of the consistency graph produced for a call.
func (l *Logger) LogGraphBuilt(ctx context.Context, vertices, edges int) {
	l.DebugContext(ctx, "recognize: consistency graph built",
		"vertices", vertices,
		"edges", edges,
	)
}

// LogNoClique logs a call where the clique engine found nothing meeting
// min_cluster_size. Also a benign empty result, never above Debug.
func (l *Logger) LogNoClique(ctx context.Context, minClusterSize int) {
	l.DebugContext(ctx, "recognize: no clique met min_cluster_size",
		"min_cluster_size", minClusterSize,
	)
}

// LogClusterFound logs a successfully extracted candidate cluster.
func (l *Logger) LogClusterFound(ctx context.Context, clusterSize, correspondencesUsed int) {
	l.DebugContext(ctx, "recognize: candidate cluster found",
		"cluster_size", clusterSize,
		"correspondences_used", correspondencesUsed,
	)
}

// LogTransformFailed logs an external transform-solver failure. This is the
// one non-benign, externally observable failure mode the recognizer sees;
// it is logged at Warn, and the underlying error is still returned to the
// caller unmodified (§7: "the recognizer itself does not catch or
// transform this signal").
func (l *Logger) LogTransformFailed(ctx context.Context, clusterSize int, err error) {
	l.WarnContext(ctx, "recognize: transform estimation failed",
		"cluster_size", clusterSize,
		"error", err,
	)
}
