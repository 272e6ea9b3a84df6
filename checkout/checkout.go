// Package checkout drives the cart and order-submission lifecycle as a pure
// state machine: every transition is Apply(snapshot, event) -> snapshot, with
// no I/O. The caller performs the actual network call when a snapshot enters
// StateSubmitting and feeds the outcome back as a Resolved or Failed event.
//
// The machine cannot tell a request that never reached the server apart from
// one whose response was lost after the server committed the order. It
// therefore never resubmits on its own; a failed submission stays in
// StateError with the cart and buyer fields intact until the user retries.
package checkout

import (
	"errors"
	"strings"

	"event-seating-cli/model"
	"event-seating-cli/seating"
)

type State int

const (
	StateIdle State = iota
	StateCollecting
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrIdentityIncomplete is returned when a buyer identity has at least one
// empty field after trimming.
var ErrIdentityIncomplete = errors.New("email, first name and last name are required")

// Snapshot is the complete checkout-session state. Snapshots are values;
// Apply returns a new one and never mutates its argument.
type Snapshot struct {
	State    State
	Cart     seating.Cart
	Identity model.Buyer

	// CatalogReady is set once a seating model has been built; checkout
	// cannot open before the event data is loaded.
	CatalogReady bool

	// Seq identifies the in-flight submission. Resolved and Failed events
	// carrying an older sequence are ignored, so only the latest request
	// can move the machine out of StateSubmitting.
	Seq int

	// Order holds the response of the last successful submission while the
	// snapshot is in StateSuccess.
	Order *model.OrderResponse

	// Err is the current validation or submission error, if any.
	Err error
}

// Event is a checkout state-machine input.
type Event interface{ checkoutEvent() }

// ToggleSeat flips a seat's cart membership. Only handled while browsing
// (StateIdle); the cart is frozen once checkout is open.
type ToggleSeat struct{ Seat seating.PricedSeat }

// CatalogLoaded installs a freshly built seating model: it marks checkout as
// openable and prunes carted seats that no longer exist.
type CatalogLoaded struct{ Model seating.Model }

// Open starts checkout. Requires a non-empty cart and loaded event data.
type Open struct{}

// SetIdentity replaces the buyer identity while collecting.
type SetIdentity struct{ Identity model.Buyer }

// Submit attempts to leave StateCollecting. Validation failures keep the
// machine collecting and never reach the network.
type Submit struct{}

// Resolved reports a successful order response for submission Seq.
type Resolved struct {
	Seq   int
	Order model.OrderResponse
}

// Failed reports a failed submission attempt for submission Seq.
type Failed struct {
	Seq int
	Err error
}

// Retry returns from StateError to StateCollecting for another attempt.
type Retry struct{}

// Close dismisses checkout. It is a no-op while a submission is in flight.
type Close struct{}

func (ToggleSeat) checkoutEvent()    {}
func (CatalogLoaded) checkoutEvent() {}
func (Open) checkoutEvent()          {}
func (SetIdentity) checkoutEvent()   {}
func (Submit) checkoutEvent()        {}
func (Resolved) checkoutEvent()      {}
func (Failed) checkoutEvent()        {}
func (Retry) checkoutEvent()         {}
func (Close) checkoutEvent()         {}

// Apply computes the next snapshot for an event. Events that are not legal in
// the current state leave the snapshot unchanged.
func Apply(s Snapshot, ev Event) Snapshot {
	switch ev := ev.(type) {
	case ToggleSeat:
		if s.State != StateIdle {
			return s
		}
		s.Cart = s.Cart.Toggle(ev.Seat)
		return s

	case CatalogLoaded:
		s.CatalogReady = true
		s.Cart = s.Cart.Prune(ev.Model)
		return s

	case Open:
		if s.State != StateIdle || !s.CatalogReady || s.Cart.Empty() {
			return s
		}
		s.State = StateCollecting
		s.Err = nil
		return s

	case SetIdentity:
		if s.State != StateCollecting {
			return s
		}
		s.Identity = ev.Identity
		return s

	case Submit:
		if s.State != StateCollecting {
			return s
		}
		if err := ValidateIdentity(s.Identity); err != nil {
			s.Err = err
			return s
		}
		s.State = StateSubmitting
		s.Seq++
		s.Err = nil
		return s

	case Resolved:
		if s.State != StateSubmitting || ev.Seq != s.Seq {
			return s
		}
		order := ev.Order
		s.State = StateSuccess
		s.Order = &order
		s.Cart = s.Cart.Clear()
		s.Err = nil
		return s

	case Failed:
		if s.State != StateSubmitting || ev.Seq != s.Seq {
			return s
		}
		s.State = StateError
		s.Err = ev.Err
		return s

	case Retry:
		if s.State != StateError {
			return s
		}
		s.State = StateCollecting
		s.Err = nil
		return s

	case Close:
		if s.State == StateSubmitting {
			return s
		}
		s.State = StateIdle
		s.Order = nil
		s.Err = nil
		return s
	}
	return s
}

// ValidateIdentity checks that all buyer fields are non-empty after trimming.
func ValidateIdentity(b model.Buyer) error {
	if strings.TrimSpace(b.Email) == "" ||
		strings.TrimSpace(b.FirstName) == "" ||
		strings.TrimSpace(b.LastName) == "" {
		return ErrIdentityIncomplete
	}
	return nil
}
