package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	ledgererrors "bank-ledger/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedEventLogger() (NotifierInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewEventLogger(logger), &buf
}

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		events = append(events, event)
	}
	return events
}

func TestEventLogger_TransactionEvents(t *testing.T) {
	notifier, buf := newBufferedEventLogger()
	fx := newLedgerFixture(t)
	ctx := WithCorrelationID(context.Background(), "corr-123")

	tx, err := fx.checking.Deposit(decimal.NewFromInt(50))
	require.NoError(t, err)
	notifier.LogDeposit(ctx, tx)

	events := decodeEvents(t, buf)
	require.Len(t, events, 1)
	assert.Equal(t, "deposit", events[0]["event_type"])
	assert.Equal(t, "1001", events[0]["account_number"])
	assert.Equal(t, "50.00", events[0]["amount"])
	assert.Equal(t, "1050.00", events[0]["balance_after"])
	assert.Equal(t, "corr-123", events[0]["correlation_id"])
}

func TestEventLogger_NeverLogsCredentials(t *testing.T) {
	notifier, buf := newBufferedEventLogger()
	fx := newLedgerFixture(t)

	notifier.LogAccountOpened(context.Background(), fx.checking)
	notifier.LogAuthenticationAttempt(context.Background(), fx.checking.Number(), false, "credential mismatch")

	assert.NotContains(t, buf.String(), testPIN)
	assert.NotContains(t, buf.String(), "$2a$")
}

func TestEventLogger_OperationFailedCarriesCode(t *testing.T) {
	notifier, buf := newBufferedEventLogger()

	notifier.LogOperationFailed(context.Background(), "withdraw", "1001",
		ledgererrors.NewLimitExceeded(decimal.NewFromInt(1500), decimal.NewFromInt(10000)))
	notifier.LogOperationFailed(context.Background(), "withdraw", "1001", errors.New("boom"))

	events := decodeEvents(t, buf)
	require.Len(t, events, 2)
	assert.Equal(t, "WARN", events[0]["level"])
	assert.Equal(t, string(ledgererrors.LedgerLimitExceeded), events[0]["error_code"])
	assert.Equal(t, "", events[1]["error_code"])
	assert.Equal(t, "", events[1]["correlation_id"])
}
