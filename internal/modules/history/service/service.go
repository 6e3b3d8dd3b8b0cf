package service

import (
	"context"
	"time"

	"trade_gateway/internal/models"
	"trade_gateway/internal/modules/config"

	"github.com/opentracing/opentracing-go"
)

// Service assembles historical closed trades for an account. It holds no
// state across calls; every invocation works on a fresh snapshot.
type Service struct {
	conns           ConnectionProvider
	pageLimit       int
	brokerOffset    time.Duration
	dealConcurrency int

	now func() time.Time
}

func New(cfg *config.Config, conns ConnectionProvider) *Service {
	pageLimit := cfg.History.PageLimit
	if pageLimit <= 0 {
		pageLimit = 20
	}
	concurrency := cfg.History.DealFetchConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Service{
		conns:           conns,
		pageLimit:       pageLimit,
		brokerOffset:    time.Duration(cfg.History.BrokerUTCOffsetHours) * time.Hour,
		dealConcurrency: concurrency,
		now:             time.Now,
	}
}

// HistoricalTrades resolves the selector into a concrete window, drives the
// aggregation against the account's connection and returns closed trades
// sorted by close time descending. Errors come back raw; classification for
// the caller happens at the edge.
func (s *Service) HistoricalTrades(
	ctx context.Context,
	accountID string,
	rangeSelector string,
	offset int,
) ([]models.Trade, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "history.HistoricalTrades")
	defer span.Finish()
	span.SetTag("account_id", accountID)
	span.SetTag("range", rangeSelector)

	window, err := ResolveRange(rangeSelector, s.now(), s.brokerOffset)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}

	trades, err := s.aggregate(ctx, s.conns.Connection(accountID), window, offset)
	if err != nil {
		return nil, err
	}

	SortTrades(trades)
	return trades, nil
}
