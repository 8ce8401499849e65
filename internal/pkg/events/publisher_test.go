package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollGeneratedEvent_KeyIsPeriod(t *testing.T) {
	e := PayrollGeneratedEvent{Month: 3, Year: 2024}
	assert.Equal(t, "2024-03", e.Key())
	assert.Equal(t, PayrollGeneratedTopic, e.Topic())
}

func TestOfferAcceptedEvent_JSON(t *testing.T) {
	e := OfferAcceptedEvent{
		OfferLetterID: "offer-1",
		EmployeeID:    "emp-1",
		EmployeeCode:  "EMP0004",
		AcceptedOn:    time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "EMP0004", decoded["employee_code"])
	assert.Equal(t, "emp-1", e.Key())
}

func TestRecorderAndPublishAfterCommit(t *testing.T) {
	rec := &Recorder{}
	PublishAfterCommit(context.Background(), rec, OfferAcceptedEvent{EmployeeID: "emp-1"})
	PublishAfterCommit(context.Background(), nil, OfferAcceptedEvent{EmployeeID: "emp-2"})
	PublishAfterCommit(context.Background(), NewNoopPublisher(), OfferAcceptedEvent{EmployeeID: "emp-3"})

	got := rec.Events()
	require.Len(t, got, 1)
	assert.Equal(t, "emp-1", got[0].Key())
}
