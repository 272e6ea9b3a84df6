package model

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

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	User    Buyer  `json:"user"`
}
