package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"trade_gateway/internal/models"
)

// HistoryOrders fetches one page of completed or canceled orders for the
// account within [start, end). Paging past one page is the caller's job.
func (c *Client) HistoryOrders(
	ctx context.Context,
	accountID string,
	start, end time.Time,
	offset, limit int,
) ([]models.HistoryOrder, error) {
	requestPath := fmt.Sprintf(
		"/users/current/accounts/%s/history-orders/time/%s/%s?offset=%d&limit=%d",
		url.PathEscape(accountID),
		url.PathEscape(start.UTC().Format(time.RFC3339)),
		url.PathEscape(end.UTC().Format(time.RFC3339)),
		offset, limit,
	)

	var payload struct {
		HistoryOrders []models.HistoryOrder `json:"historyOrders"`
	}
	if err := c.get(ctx, requestPath, &payload); err != nil {
		return nil, fmt.Errorf("HistoryOrders: %w", err)
	}
	return payload.HistoryOrders, nil
}
