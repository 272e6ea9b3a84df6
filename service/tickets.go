package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"event-seating-cli/model"
)

// GetEvent fetches the public event details.
func (c *Client) GetEvent(ctx context.Context) (model.Event, error) {
	endpoint := fmt.Sprintf("%s/event", c.baseURL)

	var event model.Event
	if err := c.getJSON(ctx, endpoint, &event); err != nil {
		return model.Event{}, err
	}
	if event.EventId == "" {
		return model.Event{}, errors.New("event not found")
	}
	return event, nil
}

// GetEventTickets fetches the ticket-type catalog and raw seat rows for an
// event.
func (c *Client) GetEventTickets(ctx context.Context, eventId string) (model.EventTickets, error) {
	if strings.TrimSpace(eventId) == "" {
		return model.EventTickets{}, errors.New("event id is required")
	}
	endpoint := fmt.Sprintf("%s/event-tickets?eventId=%s", c.baseURL, url.QueryEscape(eventId))

	var tickets model.EventTickets
	if err := c.getJSON(ctx, endpoint, &tickets); err != nil {
		return model.EventTickets{}, err
	}
	return tickets, nil
}

// Login authenticates the buyer and returns the account used to prefill the
// checkout form. Any non-2xx status is a failed login.
func (c *Client) Login(ctx context.Context, email string, password string) (model.LoginResponse, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return model.LoginResponse{}, errors.New("email and password are required")
	}
	endpoint := fmt.Sprintf("%s/login", c.baseURL)

	var res model.LoginResponse
	if err := c.postJSON(ctx, endpoint, model.LoginRequest{Email: email, Password: password}, &res); err != nil {
		return model.LoginResponse{}, err
	}
	return res, nil
}

// CreateOrder submits the order exactly once. The caller decides whether and
// when to retry a failure; this method never does.
func (c *Client) CreateOrder(ctx context.Context, req model.OrderRequest) (model.OrderResponse, error) {
	if len(req.Tickets) == 0 {
		return model.OrderResponse{}, errors.New("order has no tickets")
	}
	endpoint := fmt.Sprintf("%s/order", c.baseURL)

	var res model.OrderResponse
	if err := c.postJSON(ctx, endpoint, req, &res); err != nil {
		return model.OrderResponse{}, err
	}
	return res, nil
}
