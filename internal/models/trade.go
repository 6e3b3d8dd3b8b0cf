package models

import "time"

// DealEntry is the terminal's classification of a deal leg.
type DealEntry string

const (
	DealEntryIn    DealEntry = "DEAL_ENTRY_IN"
	DealEntryOut   DealEntry = "DEAL_ENTRY_OUT"
	DealEntryInOut DealEntry = "DEAL_ENTRY_INOUT"
	DealEntryOutBy DealEntry = "DEAL_ENTRY_OUT_BY"
)

// HistoryOrder is a completed or canceled order kept in broker history.
// Every order belongs to exactly one position.
type HistoryOrder struct {
	ID         string    `json:"id"`
	PositionID string    `json:"positionId"`
	Symbol     string    `json:"symbol"`
	Type       string    `json:"type"`
	State      string    `json:"state"`
	Volume     float64   `json:"volume"`
	Time       time.Time `json:"time"`
	DoneTime   time.Time `json:"doneTime"`
}

// Deal is an executed trade leg against a position. A position accumulates
// several deals over its life (partial fills, partial closes).
type Deal struct {
	ID         string    `json:"id"`
	PositionID string    `json:"positionId"`
	Entry      DealEntry `json:"entryType"`
	Type       string    `json:"type"`
	Profit     float64   `json:"profit"`
	Symbol     string    `json:"symbol"`
	Volume     float64   `json:"volume"`
	Time       time.Time `json:"time"`
}

// Trade is the caller-visible view of a realized close. ID is the originating
// deal id; CreatedAt is a relative label computed at assembly time; Time keeps
// the absolute timestamp for sorting.
type Trade struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Profit    float64   `json:"profit"`
	Symbol    string    `json:"symbol"`
	CreatedAt string    `json:"createdAt"`
	Volume    float64   `json:"volume"`
	Time      time.Time `json:"time"`
}

// TimeWindow is a half-open [Start, End) interval in broker-adjusted time.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Position is an open position as reported by the terminal.
type Position struct {
	ID               string    `json:"id"`
	Symbol           string    `json:"symbol"`
	Type             string    `json:"type"`
	Volume           float64   `json:"volume"`
	OpenPrice        float64   `json:"openPrice"`
	CurrentPrice     float64   `json:"currentPrice"`
	Profit           float64   `json:"profit"`
	UnrealizedProfit float64   `json:"unrealizedProfit"`
	Time             time.Time `json:"time"`
}

// AccountInformation is the terminal's snapshot of account financial state.
type AccountInformation struct {
	Broker       string  `json:"broker"`
	Currency     string  `json:"currency"`
	Server       string  `json:"server"`
	Balance      float64 `json:"balance"`
	Equity       float64 `json:"equity"`
	Margin       float64 `json:"margin"`
	FreeMargin   float64 `json:"freeMargin"`
	Leverage     int     `json:"leverage"`
	MarginLevel  float64 `json:"marginLevel"`
	TradeAllowed bool    `json:"tradeAllowed"`
}
