package service

import (
	"context"
	"time"

	"trade_gateway/internal/models"
)

// AccountConnection binds the client to a single account id and exposes the
// read-only history surface the aggregation pipeline consumes.
type AccountConnection struct {
	client    *Client
	accountID string
}

func (c *Client) Connection(accountID string) *AccountConnection {
	return &AccountConnection{client: c, accountID: accountID}
}

func (a *AccountConnection) ListHistoryOrders(
	ctx context.Context,
	start, end time.Time,
	offset, limit int,
) ([]models.HistoryOrder, error) {
	return a.client.HistoryOrders(ctx, a.accountID, start, end, offset, limit)
}

func (a *AccountConnection) ListDealsForPosition(ctx context.Context, positionID string) ([]models.Deal, error) {
	return a.client.DealsForPosition(ctx, a.accountID, positionID)
}
