package store

import (
	"testing"
	"time"

	"event-seating-cli/model"
)

func setTestDirs(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("XDG_CACHE_HOME", root)
}

func TestRememberBuyerIdentity_RoundTrip(t *testing.T) {
	setTestDirs(t)

	buyer, err := LoadBuyerIdentity()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if buyer != (model.Buyer{}) {
		t.Fatalf("expected empty identity, got %+v", buyer)
	}

	want := model.Buyer{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}
	if err := RememberBuyerIdentity(want); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	buyer, err = LoadBuyerIdentity()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if buyer != want {
		t.Fatalf("expected %+v, got %+v", want, buyer)
	}
}

func TestRememberBuyerIdentity_RejectsIncomplete(t *testing.T) {
	setTestDirs(t)

	if err := RememberBuyerIdentity(model.Buyer{Email: "jane@example.com"}); err == nil {
		t.Fatal("expected error for incomplete identity")
	}
}

func TestEventCache_RoundTrip(t *testing.T) {
	setTestDirs(t)

	_, fresh, err := LoadEventCache()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if fresh {
		t.Fatal("expected empty cache to be stale")
	}

	want := model.Event{
		EventId:     "ev1",
		NamePub:     "Summer Night Live",
		CurrencyIso: "CZK",
		DateFrom:    time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC),
	}
	if err := SaveEventCache(want); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got, fresh, err := LoadEventCache()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !fresh {
		t.Fatal("expected cache to be fresh")
	}
	if got.EventId != want.EventId || !got.DateFrom.Equal(want.DateFrom) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestTicketsCache_RoundTrip(t *testing.T) {
	setTestDirs(t)

	want := model.EventTickets{
		TicketTypes: []model.TicketType{{Id: "t1", Name: "VIP", Price: 800}},
		SeatRows: []model.SeatRow{
			{SeatRow: 1, Seats: []model.Seat{{SeatId: "s1", Place: 1, TicketTypeId: "t1"}}},
		},
	}
	if err := SaveTicketsCache("ev1", want); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got, fresh, err := LoadTicketsCache("ev1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !fresh {
		t.Fatal("expected cache to be fresh")
	}
	if len(got.SeatRows) != 1 || got.SeatRows[0].Seats[0].SeatId != "s1" {
		t.Fatalf("unexpected payload: %+v", got)
	}

	// A different event id misses the cache.
	_, fresh, err = LoadTicketsCache("other")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if fresh {
		t.Fatal("expected miss for unknown event id")
	}
}
