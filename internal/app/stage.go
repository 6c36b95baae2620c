package app

import (
	"context"
	"log/slog"
	"time"
)

// Stage is a step of a pokemon lookup.
//
//	FetchingSpecies -> SelectingDialect -> FetchingTranslation -> Done
//
// A failure at any stage ends the lookup with that stage's error.
// Basic lookups stop after FetchingSpecies.
type Stage string

const (
	StageFetchingSpecies     Stage = "fetching_species"
	StageSelectingDialect    Stage = "selecting_dialect"
	StageFetchingTranslation Stage = "fetching_translation"
	StageDone                Stage = "done"
)

// lookup tracks the current stage of one request for logging.
type lookup struct {
	logger *slog.Logger
	stage  Stage
	start  time.Time
}

func newLookup(logger *slog.Logger, operation, name string) *lookup {
	return &lookup{
		logger: logger.With(slog.String("operation", operation), slog.String("pokemon", name)),
		start:  time.Now(),
	}
}

func (l *lookup) enter(ctx context.Context, stage Stage) {
	l.stage = stage
	l.logger.DebugContext(ctx, "entering stage", slog.String("stage", string(stage)))
}

// fail logs err against the current stage and returns it unchanged.
func (l *lookup) fail(ctx context.Context, err error) error {
	l.logger.WarnContext(ctx, "lookup failed",
		slog.String("stage", string(l.stage)),
		slog.Duration("duration", time.Since(l.start)),
		slog.Any("error", err),
	)

	return err
}

func (l *lookup) done(ctx context.Context, attrs ...slog.Attr) {
	l.stage = StageDone
	l.logger.LogAttrs(ctx, slog.LevelInfo, "lookup completed",
		append(attrs, slog.Duration("duration", time.Since(l.start)))...)
}
