package service

import (
	"context"
	"fmt"
	"net/url"

	"trade_gateway/internal/models"
)

// DealsForPosition fetches every deal recorded against one position, opening
// and closing legs included.
func (c *Client) DealsForPosition(ctx context.Context, accountID, positionID string) ([]models.Deal, error) {
	requestPath := fmt.Sprintf(
		"/users/current/accounts/%s/deals/position/%s",
		url.PathEscape(accountID),
		url.PathEscape(positionID),
	)

	var payload struct {
		Deals []models.Deal `json:"deals"`
	}
	if err := c.get(ctx, requestPath, &payload); err != nil {
		return nil, fmt.Errorf("DealsForPosition: %w", err)
	}
	return payload.Deals, nil
}
