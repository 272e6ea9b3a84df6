package model

import "time"

type Event struct {
	EventId        string    `json:"eventId"`
	NamePub        string    `json:"namePub"`
	Description    string    `json:"description"`
	CurrencyIso    string    `json:"currencyIso"`
	DateFrom       time.Time `json:"dateFrom"`
	DateTo         time.Time `json:"dateTo"`
	HeaderImageUrl string    `json:"headerImageUrl"`
	Place          string    `json:"place"`
}
