package service

import (
	"context"
	"fmt"
	"time"

	"trade_gateway/internal/models"

	"golang.org/x/sync/errgroup"
)

// Connection is the read-only history surface of one account's terminal
// connection.
type Connection interface {
	ListHistoryOrders(ctx context.Context, start, end time.Time, offset, limit int) ([]models.HistoryOrder, error)
	ListDealsForPosition(ctx context.Context, positionID string) ([]models.Deal, error)
}

// ConnectionProvider hands out per-account connections.
type ConnectionProvider interface {
	Connection(accountID string) Connection
}

// aggregate fetches one page of history orders inside the window, resolves
// the deal list for every order's position with bounded concurrency, keeps
// closing (OUT) deals only and deduplicates them by deal id. Several orders
// sharing one position is the normal case (partial closes), which is exactly
// why the dedup pass exists. Any upstream failure aborts the whole call.
func (s *Service) aggregate(
	ctx context.Context,
	conn Connection,
	window models.TimeWindow,
	offset int,
) ([]models.Trade, error) {
	orders, err := conn.ListHistoryOrders(ctx, window.Start, window.End, offset, s.pageLimit)
	if err != nil {
		return nil, fmt.Errorf("list history orders: %w", err)
	}

	// Positions are independent, so the per-order fetches fan out. Results
	// land in order slots so the merge below stays deterministic.
	dealsPerOrder := make([][]models.Deal, len(orders))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.dealConcurrency)
	for i, order := range orders {
		g.Go(func() error {
			deals, err := conn.ListDealsForPosition(gctx, order.PositionID)
			if err != nil {
				return fmt.Errorf("list deals for position %s: %w", order.PositionID, err)
			}
			dealsPerOrder[i] = deals
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	seen := make(map[string]struct{})
	trades := make([]models.Trade, 0, len(orders))
	for _, deals := range dealsPerOrder {
		for _, deal := range deals {
			if deal.Entry != models.DealEntryOut {
				continue
			}
			if _, ok := seen[deal.ID]; ok {
				continue
			}
			seen[deal.ID] = struct{}{}
			trades = append(trades, models.Trade{
				ID:        deal.ID,
				Type:      deal.Type,
				Profit:    deal.Profit,
				Symbol:    deal.Symbol,
				CreatedAt: RelativeTime(deal.Time, now),
				Volume:    deal.Volume,
				Time:      deal.Time,
			})
		}
	}
	return trades, nil
}
