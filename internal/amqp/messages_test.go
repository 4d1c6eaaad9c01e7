package amqp

import (
	"testing"
	"time"
)

func TestRecordSyncMessageRoundTrip(t *testing.T) {
	msg := NewRecordSyncMessage(42, 3)
	if msg.ID != 42 || msg.Version != 3 {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if time.Since(msg.Timestamp) > time.Minute {
		t.Fatalf("timestamp not set: %v", msg.Timestamp)
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := RecordSyncMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != msg.ID || got.Version != msg.Version {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, msg)
	}
}

func TestRecordSyncMessageFromJSONInvalid(t *testing.T) {
	if _, err := RecordSyncMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
