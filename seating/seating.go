package seating

import (
	"fmt"
	"sort"

	"event-seating-cli/model"
)

// PricedSeat is a seat with its ticket-type price and name resolved at merge
// time. Values are snapshots: a later catalog reload produces new seats and
// never mutates existing ones.
type PricedSeat struct {
	SeatId         string
	Row            int
	Place          int
	Price          float64
	TicketTypeId   string
	TicketTypeName string
}

type Row struct {
	SeatRow int
	Seats   []PricedSeat
}

// Model is the full priced seat map, rows ascending by SeatRow and seats
// within each row ascending by Place.
type Model []Row

// UnknownTicketTypeError reports a seat whose ticketTypeId has no matching
// entry in the catalog. Rendering such a seat would show an undefined price,
// so Build refuses to produce a model containing it.
type UnknownTicketTypeError struct {
	SeatId       string
	SeatRow      int
	TicketTypeId string
}

func (e *UnknownTicketTypeError) Error() string {
	return fmt.Sprintf("seat %s in row %d references unknown ticket type %q", e.SeatId, e.SeatRow, e.TicketTypeId)
}

// Build merges the raw catalog payload into a priced seating model. It is a
// pure function of its input: the same payload always yields the same model,
// in the same order.
func Build(tickets model.EventTickets) (Model, error) {
	types := make(map[string]model.TicketType, len(tickets.TicketTypes))
	for _, t := range tickets.TicketTypes {
		types[t.Id] = t
	}

	rows := make(Model, 0, len(tickets.SeatRows))
	for _, raw := range tickets.SeatRows {
		row := Row{SeatRow: raw.SeatRow, Seats: make([]PricedSeat, 0, len(raw.Seats))}
		for _, seat := range raw.Seats {
			ticketType, ok := types[seat.TicketTypeId]
			if !ok {
				return nil, &UnknownTicketTypeError{
					SeatId:       seat.SeatId,
					SeatRow:      raw.SeatRow,
					TicketTypeId: seat.TicketTypeId,
				}
			}
			row.Seats = append(row.Seats, PricedSeat{
				SeatId:         seat.SeatId,
				Row:            raw.SeatRow,
				Place:          seat.Place,
				Price:          ticketType.Price,
				TicketTypeId:   ticketType.Id,
				TicketTypeName: ticketType.Name,
			})
		}
		sort.SliceStable(row.Seats, func(i, j int) bool {
			return row.Seats[i].Place < row.Seats[j].Place
		})
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SeatRow < rows[j].SeatRow
	})
	return rows, nil
}

// Has reports whether a seat with the given id exists in the model.
func (m Model) Has(seatId string) bool {
	for _, row := range m {
		for _, seat := range row.Seats {
			if seat.SeatId == seatId {
				return true
			}
		}
	}
	return false
}

// SeatCount returns the total number of seats across all rows.
func (m Model) SeatCount() int {
	count := 0
	for _, row := range m {
		count += len(row.Seats)
	}
	return count
}
