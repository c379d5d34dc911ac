package events

import (
	"context"
	"log/slog"
)

// LogSink writes events as structured log records
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink logging through logger, or slog.Default()
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger.With("component", "simulation")}
}

// Emit logs e at a level matching its type
func (l *LogSink) Emit(e Event) {
	attrs := []slog.Attr{
		slog.String("event", e.Type.String()),
		slog.String("run_id", e.RunID.String()),
		slog.Int64("seq", e.Seq),
		slog.Float64("time", e.Time),
	}
	if e.Object != "" {
		attrs = append(attrs, slog.String("object", e.Object))
	}
	if e.Theoretical {
		attrs = append(attrs, slog.Bool("theoretical", true))
	}

	switch e.Type {
	case EventConstructionCompleted:
		attrs = append(attrs,
			slog.Float64("build_time", e.BuildTimes.Total),
			slog.Float64("buildpower_time", e.BuildTimes.Buildpower),
			slog.Float64("energy_time", e.BuildTimes.Energy),
			slog.Float64("metal_time", e.BuildTimes.Metal),
			slog.Float64("metal", e.Snapshot.Metal),
			slog.Float64("energy", e.Snapshot.Energy),
			slog.Float64("metal_per_second", e.Snapshot.MetalPerSecond),
			slog.Float64("energy_per_second", e.Snapshot.EnergyPerSecond),
		)
	case EventStallWarning:
		attrs = append(attrs, slog.String("resource", e.Resource))
	case EventConversion:
		attrs = append(attrs,
			slog.String("regime", e.Conversion.Regime.String()),
			slog.Float64("metal", e.Conversion.Metal),
			slog.Float64("energy", e.Conversion.Energy),
		)
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}

	msg := e.Message
	if msg == "" {
		msg = e.Type.String()
	}
	l.logger.LogAttrs(context.Background(), levelFor(e.Type), msg, attrs...)
}

func levelFor(et EventType) slog.Level {
	switch et {
	case EventStallWarning, EventSchedulerFallback, EventSchedulerSkipped:
		return slog.LevelWarn
	case EventConstructionFailed, EventSchedulerExhausted:
		return slog.LevelError
	case EventConversion, EventSchedulerWait:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
