package services

import (
	"context"
	"log/slog"
	"time"

	ledgererrors "bank-ledger/internal/errors"
	"bank-ledger/internal/models"
)

type contextKey string

const (
	// CorrelationIDKey carries the correlation id attached to every event
	CorrelationIDKey contextKey = "correlation_id"
)

// EventLogger turns ledger and session events into structured log records.
// Credentials and hashes are never part of an event.
type EventLogger struct {
	logger *slog.Logger
}

func NewEventLogger(logger *slog.Logger) NotifierInterface {
	return &EventLogger{
		logger: logger,
	}
}

// WithCorrelationID returns a context whose events share id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

func (el *EventLogger) LogAccountOpened(ctx context.Context, account models.Account) {
	el.logger.InfoContext(ctx, "account opened",
		slog.String("event_type", "account_opened"),
		slog.String("account_number", account.Number()),
		slog.String("account_type", string(account.Type())),
		slog.String("holder", account.Owner().Name()),
		slog.String("balance", account.Balance().StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogDeposit(ctx context.Context, tx models.Transaction) {
	el.logTransaction(ctx, "deposit", "deposit", tx)
}

func (el *EventLogger) LogWithdrawal(ctx context.Context, tx models.Transaction) {
	el.logTransaction(ctx, "withdrawal", "withdrawal", tx)
}

func (el *EventLogger) LogTransfer(ctx context.Context, out, in models.Transaction) {
	el.logger.InfoContext(ctx, "transfer",
		slog.String("event_type", "transfer"),
		slog.String("from_account", out.AccountNumber()),
		slog.String("to_account", in.AccountNumber()),
		slog.String("amount", out.Amount().StringFixed(2)),
		slog.String("from_balance", out.BalanceAfter().StringFixed(2)),
		slog.String("to_balance", in.BalanceAfter().StringFixed(2)),
		slog.String("debit_transaction_id", out.ID().String()),
		slog.String("credit_transaction_id", in.ID().String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogFeeApplied(ctx context.Context, tx models.Transaction) {
	el.logTransaction(ctx, "maintenance fee applied", "fee_applied", tx)
}

func (el *EventLogger) LogNoFee(ctx context.Context, accountNumber string) {
	el.logger.InfoContext(ctx, "no maintenance fee",
		slog.String("event_type", "no_fee"),
		slog.String("account_number", accountNumber),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogInterestApplied(ctx context.Context, tx models.Transaction) {
	el.logTransaction(ctx, "interest applied", "interest_applied", tx)
}

func (el *EventLogger) LogOperationFailed(ctx context.Context, operation, accountNumber string, err error) {
	code, _ := ledgererrors.CodeOf(err)
	el.logger.WarnContext(ctx, "operation failed",
		slog.String("event_type", "operation_failed"),
		slog.String("operation", operation),
		slog.String("account_number", accountNumber),
		slog.String("error_code", string(code)),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogAuthenticationAttempt(ctx context.Context, subject string, success bool, reason string) {
	level := slog.LevelInfo
	if !success {
		level = slog.LevelWarn
	}
	el.logger.Log(ctx, level, "authentication attempt",
		slog.String("event_type", "authentication_attempt"),
		slog.String("subject", subject),
		slog.Bool("success", success),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) LogSessionEvent(ctx context.Context, username, event string) {
	el.logger.InfoContext(ctx, "session event",
		slog.String("event_type", "session_"+event),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (el *EventLogger) logTransaction(ctx context.Context, msg, eventType string, tx models.Transaction) {
	el.logger.InfoContext(ctx, msg,
		slog.String("event_type", eventType),
		slog.String("transaction_id", tx.ID().String()),
		slog.String("account_number", tx.AccountNumber()),
		slog.String("transaction_type", string(tx.Type())),
		slog.String("amount", tx.Amount().StringFixed(2)),
		slog.String("balance_after", tx.BalanceAfter().StringFixed(2)),
		slog.Time("timestamp", tx.Timestamp()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
