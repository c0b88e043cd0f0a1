package amqp

import (
	"encoding/json"
	"fmt"
	"time"
)

// Operations carried by ledger events.
const (
	OpAdd            = "add"
	OpDelete         = "delete"
	OpDeleteRange    = "delete_range"
	OpDeleteCategory = "delete_category"
	OpDeleteAll      = "delete_all"
	OpMerge          = "merge"
)

// LedgerEvent announces that the ledger changed. It carries no row data;
// consumers read the current state from the database.
type LedgerEvent struct {
	Operation string    `json:"operation"`
	ID        int64     `json:"id,omitempty"`
	Affected  int64     `json:"affected"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerEvent creates an event stamped with the current time.
func NewLedgerEvent(op string, id, affected int64) *LedgerEvent {
	return &LedgerEvent{
		Operation: op,
		ID:        id,
		Affected:  affected,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerEventFromJSON decodes an event and rejects unknown operations.
func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var msg LedgerEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	switch msg.Operation {
	case OpAdd, OpDelete, OpDeleteRange, OpDeleteCategory, OpDeleteAll, OpMerge:
		return &msg, nil
	}
	return nil, fmt.Errorf("unknown ledger operation %q", msg.Operation)
}
