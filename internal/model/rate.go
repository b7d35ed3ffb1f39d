package model

import "time"

// DefaultExchangeRate is the USD->INR rate used before any sample has been
// fetched successfully.
const DefaultExchangeRate = 1.0

// ExchangeRateSample is one recorded USD->INR rate observation.
// Samples form an append-only log; only the newest sample per currency is
// ever read, older rows are retained as history.
type ExchangeRateSample struct {
	ID        int64     `json:"id"`
	Rate      float64   `json:"rate"`
	Currency  Currency  `json:"currency"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
