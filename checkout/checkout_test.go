package checkout

import (
	"errors"
	"testing"

	"event-seating-cli/model"
	"event-seating-cli/seating"
)

var (
	seatOne = seating.PricedSeat{SeatId: "s1", Row: 1, Place: 1, Price: 800, TicketTypeId: "t1", TicketTypeName: "VIP"}
	seatTwo = seating.PricedSeat{SeatId: "s2", Row: 1, Place: 2, Price: 400, TicketTypeId: "t2", TicketTypeName: "Standard"}

	validBuyer = model.Buyer{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}
)

func testModel() seating.Model {
	return seating.Model{
		{SeatRow: 1, Seats: []seating.PricedSeat{seatOne, seatTwo}},
	}
}

// collectingSnapshot walks a fresh session to StateCollecting with one seat
// in the cart.
func collectingSnapshot(t *testing.T) Snapshot {
	t.Helper()
	s := Snapshot{}
	s = Apply(s, CatalogLoaded{Model: testModel()})
	s = Apply(s, ToggleSeat{Seat: seatOne})
	s = Apply(s, Open{})
	if s.State != StateCollecting {
		t.Fatalf("expected collecting, got %v", s.State)
	}
	return s
}

// submittingSnapshot walks to StateSubmitting with a valid identity.
func submittingSnapshot(t *testing.T) Snapshot {
	t.Helper()
	s := collectingSnapshot(t)
	s = Apply(s, SetIdentity{Identity: validBuyer})
	s = Apply(s, Submit{})
	if s.State != StateSubmitting {
		t.Fatalf("expected submitting, got %v", s.State)
	}
	return s
}

func TestApply_OpenRequiresCartAndCatalog(t *testing.T) {
	s := Snapshot{}

	// No catalog, no cart.
	if got := Apply(s, Open{}); got.State != StateIdle {
		t.Fatalf("expected idle, got %v", got.State)
	}

	// Catalog but empty cart.
	s = Apply(s, CatalogLoaded{Model: testModel()})
	if got := Apply(s, Open{}); got.State != StateIdle {
		t.Fatalf("expected idle with empty cart, got %v", got.State)
	}

	// Cart but no catalog.
	noCatalog := Apply(Snapshot{}, ToggleSeat{Seat: seatOne})
	if got := Apply(noCatalog, Open{}); got.State != StateIdle {
		t.Fatalf("expected idle without catalog, got %v", got.State)
	}

	s = Apply(s, ToggleSeat{Seat: seatOne})
	if got := Apply(s, Open{}); got.State != StateCollecting {
		t.Fatalf("expected collecting, got %v", got.State)
	}
}

func TestApply_ToggleOnlyWhileBrowsing(t *testing.T) {
	s := collectingSnapshot(t)
	before := s.Cart.Count()

	s = Apply(s, ToggleSeat{Seat: seatTwo})
	if s.Cart.Count() != before {
		t.Fatalf("expected cart frozen while collecting, got %d seats", s.Cart.Count())
	}
}

func TestApply_SubmitValidatesBeforeNetwork(t *testing.T) {
	s := collectingSnapshot(t)
	s = Apply(s, SetIdentity{Identity: model.Buyer{Email: "  ", FirstName: "Jane", LastName: "Doe"}})

	seqBefore := s.Seq
	s = Apply(s, Submit{})

	if s.State != StateCollecting {
		t.Fatalf("expected to stay collecting, got %v", s.State)
	}
	if !errors.Is(s.Err, ErrIdentityIncomplete) {
		t.Fatalf("expected ErrIdentityIncomplete, got %v", s.Err)
	}
	// Seq unchanged means no submission was started.
	if s.Seq != seqBefore {
		t.Fatalf("expected no submission sequence, got %d", s.Seq)
	}
}

func TestApply_SubmittingOnlyFromCollecting(t *testing.T) {
	s := Snapshot{}
	s = Apply(s, CatalogLoaded{Model: testModel()})
	s = Apply(s, ToggleSeat{Seat: seatOne})

	// Submit while idle does nothing.
	if got := Apply(s, Submit{}); got.State != StateIdle {
		t.Fatalf("expected idle, got %v", got.State)
	}
}

func TestApply_SuccessClearsCart(t *testing.T) {
	s := submittingSnapshot(t)
	order := model.OrderResponse{OrderId: "o1", TotalAmount: 800}

	s = Apply(s, Resolved{Seq: s.Seq, Order: order})

	if s.State != StateSuccess {
		t.Fatalf("expected success, got %v", s.State)
	}
	if !s.Cart.Empty() {
		t.Fatalf("expected cart cleared, got %d seats", s.Cart.Count())
	}
	if s.Order == nil || s.Order.OrderId != "o1" {
		t.Fatalf("expected order response kept, got %+v", s.Order)
	}
}

func TestApply_SuccessOnlyFromSubmitting(t *testing.T) {
	s := collectingSnapshot(t)
	s = Apply(s, Resolved{Seq: s.Seq, Order: model.OrderResponse{OrderId: "o1"}})
	if s.State != StateCollecting {
		t.Fatalf("expected collecting, got %v", s.State)
	}
}

func TestApply_FailurePreservesCartAndIdentity(t *testing.T) {
	s := submittingSnapshot(t)
	submitErr := errors.New("order rejected")

	s = Apply(s, Failed{Seq: s.Seq, Err: submitErr})

	if s.State != StateError {
		t.Fatalf("expected error state, got %v", s.State)
	}
	if s.Cart.Count() != 1 {
		t.Fatalf("expected cart preserved, got %d seats", s.Cart.Count())
	}
	if s.Identity != validBuyer {
		t.Fatalf("expected identity preserved, got %+v", s.Identity)
	}
	if !errors.Is(s.Err, submitErr) {
		t.Fatalf("expected submission error surfaced, got %v", s.Err)
	}
}

func TestApply_StaleResultsIgnored(t *testing.T) {
	s := submittingSnapshot(t)

	stale := Apply(s, Resolved{Seq: s.Seq - 1, Order: model.OrderResponse{OrderId: "old"}})
	if stale.State != StateSubmitting {
		t.Fatalf("expected stale success ignored, got %v", stale.State)
	}

	stale = Apply(s, Failed{Seq: s.Seq - 1, Err: errors.New("old failure")})
	if stale.State != StateSubmitting {
		t.Fatalf("expected stale failure ignored, got %v", stale.State)
	}
}

func TestApply_CloseRefusedWhileSubmitting(t *testing.T) {
	s := submittingSnapshot(t)

	s = Apply(s, Close{})

	if s.State != StateSubmitting {
		t.Fatalf("expected close to be a no-op while submitting, got %v", s.State)
	}
}

func TestApply_CloseFromOtherStates(t *testing.T) {
	s := collectingSnapshot(t)
	if got := Apply(s, Close{}); got.State != StateIdle {
		t.Fatalf("expected idle after close, got %v", got.State)
	}

	failed := Apply(submittingSnapshot(t), Failed{Seq: 1, Err: errors.New("boom")})
	closed := Apply(failed, Close{})
	if closed.State != StateIdle {
		t.Fatalf("expected idle after closing error, got %v", closed.State)
	}
	if closed.Cart.Count() != 1 {
		t.Fatalf("expected cart kept after closing error, got %d", closed.Cart.Count())
	}
	if closed.Identity != validBuyer {
		t.Fatalf("expected identity kept after closing error, got %+v", closed.Identity)
	}
}

func TestApply_RetryReturnsToCollecting(t *testing.T) {
	failed := Apply(submittingSnapshot(t), Failed{Seq: 1, Err: errors.New("boom")})

	s := Apply(failed, Retry{})

	if s.State != StateCollecting {
		t.Fatalf("expected collecting after retry, got %v", s.State)
	}
	if s.Err != nil {
		t.Fatalf("expected error cleared on retry, got %v", s.Err)
	}
	if s.Cart.Count() != 1 || s.Identity != validBuyer {
		t.Fatal("expected cart and identity preserved for retry")
	}
}

func TestApply_CatalogLoadedPrunesCart(t *testing.T) {
	s := Snapshot{}
	s = Apply(s, CatalogLoaded{Model: testModel()})
	s = Apply(s, ToggleSeat{Seat: seatOne})
	s = Apply(s, ToggleSeat{Seat: seatTwo})

	shrunk := seating.Model{{SeatRow: 1, Seats: []seating.PricedSeat{seatOne}}}
	s = Apply(s, CatalogLoaded{Model: shrunk})

	if s.Cart.Has("s2") {
		t.Fatal("expected removed seat pruned from cart")
	}
	if !s.Cart.Has("s1") {
		t.Fatal("expected surviving seat kept in cart")
	}
}

func TestValidateIdentity(t *testing.T) {
	cases := []struct {
		name  string
		buyer model.Buyer
		valid bool
	}{
		{"complete", validBuyer, true},
		{"padded but complete", model.Buyer{Email: " a@b.cz ", FirstName: " A ", LastName: " B "}, true},
		{"empty email", model.Buyer{FirstName: "A", LastName: "B"}, false},
		{"whitespace first name", model.Buyer{Email: "a@b.cz", FirstName: "  ", LastName: "B"}, false},
		{"empty last name", model.Buyer{Email: "a@b.cz", FirstName: "A"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateIdentity(tc.buyer)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
