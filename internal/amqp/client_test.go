package amqp

import (
	"context"
	"errors"
	"testing"

	applog "fintrack/internal/log"
)

var testLogger = applog.Default(applog.ComponentAMQP)

type fakeAck struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (f *fakeAck) Ack(bool) error {
	f.acked = true
	return nil
}

func (f *fakeAck) Nack(_ bool, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func TestLedgerEventRoundTrip(t *testing.T) {
	ev := NewLedgerEvent(OpMerge, 0, 4)
	body, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := LedgerEventFromJSON(body)
	if err != nil {
		t.Fatalf("LedgerEventFromJSON: %v", err)
	}
	if got.Operation != OpMerge || got.Affected != 4 || !got.Timestamp.Equal(ev.Timestamp) {
		t.Fatalf("unexpected event: %+v", got)
	}
}

func TestLedgerEventFromJSONRejects(t *testing.T) {
	for _, body := range []string{`not json`, `{"operation":"explode"}`, `{}`} {
		if _, err := LedgerEventFromJSON([]byte(body)); err == nil {
			t.Errorf("expected error for %s", body)
		}
	}
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("success acks", func(t *testing.T) {
		ack := &fakeAck{}
		var seen *LedgerEvent
		dispatch(ctx, testLogger, []byte(`{"operation":"add","id":3,"affected":1}`), ack, func(_ context.Context, ev *LedgerEvent) error {
			seen = ev
			return nil
		})
		if !ack.acked || ack.nacked {
			t.Fatalf("expected ack, got %+v", ack)
		}
		if seen == nil || seen.ID != 3 {
			t.Fatalf("handler not called with event: %+v", seen)
		}
	})

	t.Run("bad body dropped", func(t *testing.T) {
		ack := &fakeAck{}
		dispatch(ctx, testLogger, []byte(`{`), ack, func(context.Context, *LedgerEvent) error {
			t.Fatal("handler must not run")
			return nil
		})
		if !ack.nacked || ack.requeued {
			t.Fatalf("expected nack without requeue, got %+v", ack)
		}
	})

	t.Run("handler failure requeues", func(t *testing.T) {
		ack := &fakeAck{}
		dispatch(ctx, testLogger, []byte(`{"operation":"delete_all"}`), ack, func(context.Context, *LedgerEvent) error {
			return errors.New("sheets unavailable")
		})
		if !ack.nacked || !ack.requeued {
			t.Fatalf("expected nack with requeue, got %+v", ack)
		}
	})
}
