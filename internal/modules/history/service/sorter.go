package service

import (
	"sort"

	"trade_gateway/internal/models"
)

// SortTrades orders trades by close time descending, in place. Ties keep
// their arrival order.
func SortTrades(trades []models.Trade) {
	sort.SliceStable(trades, func(i, j int) bool {
		return trades[i].Time.After(trades[j].Time)
	})
}
