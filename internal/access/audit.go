package access

import (
	"context"
	"time"

	"github.com/e-dsin/maturity-sub005/pkg/logger"
)

// AuditEvent captures one authorization decision for the audit trail.
// Transport-agnostic so sinks can fan out to logs, stores or brokers.
type AuditEvent struct {
	Timestamp time.Time
	ActorID   string
	Role      string
	Module    string
	Action    string
	Resource  string
	Allowed   bool
	Reason    string
}

// AuditSink receives authorization decisions. Injected into the engine
// rather than reached through a package-global logger.
type AuditSink interface {
	Record(ctx context.Context, ev AuditEvent)
}

// LogSink writes audit events through the structured logger.
type LogSink struct {
	log logger.Logger
}

// NewLogSink creates an audit sink backed by the given logger.
func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{log: log.Named("audit")}
}

func (s *LogSink) Record(ctx context.Context, ev AuditEvent) {
	fields := []logger.Field{
		logger.String("actorId", ev.ActorID),
		logger.String("role", ev.Role),
		logger.String("module", ev.Module),
		logger.String("action", ev.Action),
		logger.Bool("allowed", ev.Allowed),
	}
	if ev.Resource != "" {
		fields = append(fields, logger.String("resource", ev.Resource))
	}
	if ev.Reason != "" {
		fields = append(fields, logger.String("reason", ev.Reason))
	}
	if ev.Allowed {
		s.log.Info(ctx, "access granted", fields...)
		return
	}
	s.log.Warn(ctx, "access denied", fields...)
}

// NopSink discards audit events. Used in tests.
type NopSink struct{}

func (NopSink) Record(context.Context, AuditEvent) {}
