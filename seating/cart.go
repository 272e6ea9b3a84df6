package seating

import "sort"

// Cart is the buyer's current set of selected seats, keyed by seat id. Cart
// values are immutable: Toggle and Prune return a new Cart and never modify
// the receiver, so every cart transition is an atomic state replacement.
type Cart struct {
	seats map[string]PricedSeat
}

// Toggle flips the membership of a seat: selected seats are removed, anything
// else is added. The stored value is the PricedSeat snapshot passed in, so a
// later catalog change cannot retroactively reprice a carted seat.
func (c Cart) Toggle(seat PricedSeat) Cart {
	next := make(map[string]PricedSeat, len(c.seats)+1)
	for id, s := range c.seats {
		next[id] = s
	}
	if _, ok := next[seat.SeatId]; ok {
		delete(next, seat.SeatId)
	} else {
		next[seat.SeatId] = seat
	}
	return Cart{seats: next}
}

// Prune drops every carted seat that no longer exists in the given model.
// Called after a catalog reload so removed seats do not stay purchasable.
func (c Cart) Prune(m Model) Cart {
	next := make(map[string]PricedSeat, len(c.seats))
	for id, s := range c.seats {
		if m.Has(id) {
			next[id] = s
		}
	}
	return Cart{seats: next}
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) Has(seatId string) bool {
	_, ok := c.seats[seatId]
	return ok
}

func (c Cart) Empty() bool {
	return len(c.seats) == 0
}

// Count is the number of tickets in the cart.
func (c Cart) Count() int {
	return len(c.seats)
}

// Total is the sum of the prices of all carted seats, in the event currency.
func (c Cart) Total() float64 {
	var total float64
	for _, seat := range c.seats {
		total += seat.Price
	}
	return total
}

// Seats returns the carted seats in display order: row ascending, then place
// ascending.
func (c Cart) Seats() []PricedSeat {
	seats := make([]PricedSeat, 0, len(c.seats))
	for _, seat := range c.seats {
		seats = append(seats, seat)
	}
	sort.Slice(seats, func(i, j int) bool {
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Place < seats[j].Place
	})
	return seats
}
