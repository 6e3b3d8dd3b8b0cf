package service

import (
	"context"
	"fmt"
	"net/url"

	"trade_gateway/internal/models"
)

func (c *Client) Positions(ctx context.Context, accountID string) ([]models.Position, error) {
	requestPath := fmt.Sprintf(
		"/users/current/accounts/%s/positions",
		url.PathEscape(accountID),
	)

	var positions []models.Position
	if err := c.get(ctx, requestPath, &positions); err != nil {
		return nil, fmt.Errorf("Positions: %w", err)
	}
	return positions, nil
}
