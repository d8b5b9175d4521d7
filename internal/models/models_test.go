package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDisasterBeforeCreateGeneratesID(t *testing.T) {
	d := &Disaster{Title: "Flood"}
	require.NoError(t, d.BeforeCreate(nil))
	require.NotEmpty(t, d.ID)

	// Existing identifiers are preserved.
	fixed := &Disaster{ID: "existing"}
	require.NoError(t, fixed.BeforeCreate(nil))
	require.Equal(t, "existing", fixed.ID)
}

func TestAuditRecordWireFormat(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	payload, err := json.Marshal(AuditRecord{Action: "create", UserID: "u1", Timestamp: ts})
	require.NoError(t, err)
	require.JSONEq(t, `{"action":"create","user_id":"u1","timestamp":"2026-03-14T09:26:53Z"}`, string(payload))
}
