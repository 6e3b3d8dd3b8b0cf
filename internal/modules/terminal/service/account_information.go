package service

import (
	"context"
	"fmt"
	"net/url"

	"trade_gateway/internal/models"
)

func (c *Client) AccountInformation(ctx context.Context, accountID string) (models.AccountInformation, error) {
	requestPath := fmt.Sprintf(
		"/users/current/accounts/%s/account-information",
		url.PathEscape(accountID),
	)

	var info models.AccountInformation
	if err := c.get(ctx, requestPath, &info); err != nil {
		return models.AccountInformation{}, fmt.Errorf("AccountInformation: %w", err)
	}
	return info, nil
}
