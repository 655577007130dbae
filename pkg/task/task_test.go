package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEnsureID(t *testing.T) {
	a := New("water the plants", time.Now().Add(time.Hour), 2)
	a.EnsureID()
	if a.ID == "" {
		t.Fatal("expected an id")
	}

	id := a.ID
	a.EnsureID()
	if a.ID != id {
		t.Fatalf("id changed on repeated EnsureID: %s -> %s", id, a.ID)
	}
}

func TestTimestampCodec(t *testing.T) {
	when := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	ts := &Timestamp{Time: when}

	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal %s: %v", b, err)
	}
	if !back.Equal(when) {
		t.Fatalf("expected %v, got %v", when, back.Time)
	}
}

func TestTimestampZeroRoundTrip(t *testing.T) {
	var ts Timestamp
	b, err := json.Marshal(&ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("expected empty string for zero time, got %s", b)
	}
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero time, got %v", back.Time)
	}
}
