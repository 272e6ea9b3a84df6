package model

type TicketType struct {
	Id    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Seat struct {
	SeatId       string `json:"seatId"`
	Place        int    `json:"place"`
	TicketTypeId string `json:"ticketTypeId"`
}

type SeatRow struct {
	SeatRow int    `json:"seatRow"`
	Seats   []Seat `json:"seats"`
}

type EventTickets struct {
	TicketTypes []TicketType `json:"ticketTypes"`
	SeatRows    []SeatRow    `json:"seatRows"`
}
