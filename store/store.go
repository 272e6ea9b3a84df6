package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"event-seating-cli/model"
)

const (
	eventCacheTTL   = time.Hour
	ticketsCacheTTL = 10 * time.Minute
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

type buyerHistory struct {
	Buyer model.Buyer `json:"buyer"`
}

func LoadEventCache() (model.Event, bool, error) {
	path, err := cachePath("event.json")
	if err != nil {
		return model.Event{}, false, err
	}
	cache, err := loadCache[model.Event](path)
	if err != nil {
		return model.Event{}, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= eventCacheTTL, nil
}

func SaveEventCache(event model.Event) error {
	path, err := cachePath("event.json")
	if err != nil {
		return err
	}
	return saveCache(path, event)
}

func LoadTicketsCache(eventId string) (model.EventTickets, bool, error) {
	path, err := cachePath(fmt.Sprintf("tickets_%s.json", eventId))
	if err != nil {
		return model.EventTickets{}, false, err
	}
	cache, err := loadCache[model.EventTickets](path)
	if err != nil {
		return model.EventTickets{}, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= ticketsCacheTTL, nil
}

func SaveTicketsCache(eventId string, tickets model.EventTickets) error {
	path, err := cachePath(fmt.Sprintf("tickets_%s.json", eventId))
	if err != nil {
		return err
	}
	return saveCache(path, tickets)
}

// LoadBuyerIdentity returns the last remembered buyer details, used to
// prefill the checkout form. Missing history is not an error.
func LoadBuyerIdentity() (model.Buyer, error) {
	path, err := configPath("buyer.json")
	if err != nil {
		return model.Buyer{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Buyer{}, nil
		}
		return model.Buyer{}, err
	}

	var history buyerHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return model.Buyer{}, errors.New("invalid buyer history format")
	}
	return history.Buyer, nil
}

// RememberBuyerIdentity stores the buyer details of a successfully submitted
// order. Identities with any empty field are not worth remembering.
func RememberBuyerIdentity(buyer model.Buyer) error {
	if strings.TrimSpace(buyer.Email) == "" ||
		strings.TrimSpace(buyer.FirstName) == "" ||
		strings.TrimSpace(buyer.LastName) == "" {
		return errors.New("buyer identity is incomplete")
	}

	path, err := configPath("buyer.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(buyerHistory{Buyer: buyer}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cache := cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	payload, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "event-seating-cli", name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "event-seating-cli", name), nil
}
