package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"event-seating-cli/model"
	"github.com/manifoldco/promptui"
)

const defaultBaseURL = "https://nfctron-frontend-seating-case-study-2024.vercel.app"

func baseURL() string {
	if env := strings.TrimSpace(os.Getenv("SEATING_API_BASE")); env != "" {
		return strings.TrimRight(env, "/")
	}
	return defaultBaseURL
}

func GetEvent() (model.Event, error) {
	var event model.Event
	if err := getJSON(baseURL()+"/event", &event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

func GetEventTickets(eventId string) (model.EventTickets, error) {
	var tickets model.EventTickets
	endpoint := baseURL() + "/event-tickets?eventId=" + url.QueryEscape(eventId)
	if err := getJSON(endpoint, &tickets); err != nil {
		return model.EventTickets{}, err
	}
	return tickets, nil
}

func CreateOrder(order model.OrderRequest) (model.OrderResponse, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return model.OrderResponse{}, err
	}
	res, err := http.Post(baseURL()+"/order", "application/json", bytes.NewReader(payload))
	if err != nil {
		return model.OrderResponse{}, err
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return model.OrderResponse{}, fmt.Errorf("order failed: %s: %s", res.Status, strings.TrimSpace(string(body)))
	}

	var response model.OrderResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return model.OrderResponse{}, err
	}
	return response, nil
}

func getJSON(endpoint string, out any) error {
	res, err := http.Get(endpoint)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("request failed: %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// PromptBuyer asks for any buyer fields not supplied through flags.
func PromptBuyer(buyer model.Buyer) (model.Buyer, error) {
	required := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New("required")
		}
		return nil
	}

	var err error
	if strings.TrimSpace(buyer.FirstName) == "" {
		prompt := promptui.Prompt{Label: "First name", Validate: required}
		if buyer.FirstName, err = prompt.Run(); err != nil {
			return model.Buyer{}, err
		}
	}
	if strings.TrimSpace(buyer.LastName) == "" {
		prompt := promptui.Prompt{Label: "Last name", Validate: required}
		if buyer.LastName, err = prompt.Run(); err != nil {
			return model.Buyer{}, err
		}
	}
	if strings.TrimSpace(buyer.Email) == "" {
		prompt := promptui.Prompt{Label: "Email", Validate: required}
		if buyer.Email, err = prompt.Run(); err != nil {
			return model.Buyer{}, err
		}
	}
	return buyer, nil
}
