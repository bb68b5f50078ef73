package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"credit-tracker/internal/models"
	"credit-tracker/internal/ordering"
)

// TraceIDContextKey is the request context key the HTTP layer stores the trace ID under
const TraceIDContextKey = "trace_id"

type StoreEventLogger struct {
	logger *slog.Logger
}

func NewStoreEventLogger(logger *slog.Logger) StoreEventLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreEventLogger{
		logger: logger,
	}
}

func (l *StoreEventLogger) LogAccountCreated(ctx context.Context, account *models.Account) {
	l.logger.InfoContext(ctx, "account created",
		slog.String("event_type", "account_created"),
		slog.String("account_id", account.ID),
		slog.String("user_id", account.UserID),
		slog.Int("position", account.Position),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *StoreEventLogger) LogAccountUpdated(ctx context.Context, account *models.Account, fields []string) {
	l.logger.InfoContext(ctx, "account updated",
		slog.String("event_type", "account_updated"),
		slog.String("account_id", account.ID),
		slog.String("fields", strings.Join(fields, ",")),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *StoreEventLogger) LogAccountDeleted(ctx context.Context, userID, accountID string, remaining int) {
	l.logger.InfoContext(ctx, "account deleted",
		slog.String("event_type", "account_deleted"),
		slog.String("account_id", accountID),
		slog.String("user_id", userID),
		slog.Int("remaining", remaining),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *StoreEventLogger) LogAccountMoved(ctx context.Context, accountID string, dir ordering.Direction, fromPosition, toPosition int) {
	l.logger.InfoContext(ctx, "account moved",
		slog.String("event_type", "account_moved"),
		slog.String("account_id", accountID),
		slog.String("direction", string(dir)),
		slog.Int("from_position", fromPosition),
		slog.Int("to_position", toPosition),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *StoreEventLogger) LogAccountsMigrated(ctx context.Context, userID string, replaced, inserted int) {
	l.logger.WarnContext(ctx, "accounts migrated",
		slog.String("event_type", "accounts_migrated"),
		slog.String("user_id", userID),
		slog.Int("replaced", replaced),
		slog.Int("inserted", inserted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *StoreEventLogger) LogOperationFailed(ctx context.Context, operation, accountID string, err error) {
	l.logger.ErrorContext(ctx, "account operation failed",
		slog.String("event_type", "account_operation_failed"),
		slog.String("operation", operation),
		slog.String("account_id", accountID),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value(TraceIDContextKey).(string); ok {
		return traceID
	}

	return ""
}
