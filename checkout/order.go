package checkout

import (
	"strings"

	"event-seating-cli/model"
	"event-seating-cli/seating"
)

// BuildOrderRequest maps the cart and buyer identity to an order request.
// Each priced seat keeps its ticket-type id from the merge, so no catalog
// lookup is needed here. Tickets are emitted in display order (row, place).
func BuildOrderRequest(eventId string, cart seating.Cart, identity model.Buyer) model.OrderRequest {
	seats := cart.Seats()
	tickets := make([]model.OrderTicket, 0, len(seats))
	for _, seat := range seats {
		tickets = append(tickets, model.OrderTicket{
			TicketTypeId: seat.TicketTypeId,
			SeatId:       seat.SeatId,
		})
	}
	return model.OrderRequest{
		EventId: eventId,
		Tickets: tickets,
		User:    trimIdentity(identity),
	}
}

func trimIdentity(b model.Buyer) model.Buyer {
	return model.Buyer{
		Email:     strings.TrimSpace(b.Email),
		FirstName: strings.TrimSpace(b.FirstName),
		LastName:  strings.TrimSpace(b.LastName),
	}
}
