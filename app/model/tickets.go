package model

type Event struct {
	EventId     string `json:"eventId"`
	NamePub     string `json:"namePub"`
	Description string `json:"description"`
	CurrencyIso string `json:"currencyIso"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	Place       string `json:"place"`
}

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

type Buyer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type OrderTicket struct {
	TicketTypeId string `json:"ticketTypeId"`
	SeatId       string `json:"seatId"`
}

type OrderRequest struct {
	EventId string        `json:"eventId"`
	Tickets []OrderTicket `json:"tickets"`
	User    Buyer         `json:"user"`
}

type OrderResponse struct {
	OrderId     string        `json:"orderId"`
	Tickets     []OrderTicket `json:"tickets"`
	User        Buyer         `json:"user"`
	TotalAmount float64       `json:"totalAmount"`
}
