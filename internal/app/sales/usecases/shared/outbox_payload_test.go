package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/sales-record-service/internal/app/sales/contracts"
	"github.com/murkotick/sales-record-service/internal/app/sales/events"
)

func TestNewOutboxEvent(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	saleID := uuid.New().String()

	ev, err := NewOutboxEvent(events.TypeSaleCreated, saleID, events.SaleCreated{
		SaleID:      saleID,
		TotalAmount: "45",
	}, now)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(ev.EventID)
	assert.NoError(t, parseErr)
	assert.Equal(t, events.TypeSaleCreated, ev.EventType)
	assert.Equal(t, saleID, ev.AggregateID)
	assert.Equal(t, contracts.OutboxStatusPending, ev.Status)
	assert.Equal(t, now, ev.CreatedAtUTC)

	var payload events.SaleCreated
	require.NoError(t, json.Unmarshal([]byte(ev.PayloadJSON), &payload))
	assert.Equal(t, saleID, payload.SaleID)
	assert.Equal(t, "45", payload.TotalAmount)
}
