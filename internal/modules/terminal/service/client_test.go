package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trade_gateway/internal/modules/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	cfg := &config.Config{}
	cfg.Terminal.BaseURL = srv.URL
	cfg.Terminal.Token = "test-token"
	cfg.Terminal.TimeoutSeconds = 5
	return NewClient(cfg)
}

func TestHistoryOrders(t *testing.T) {
	var gotPath, gotToken, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotToken = r.Header.Get("auth-token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"historyOrders":[
			{"id":"o1","positionId":"P1","symbol":"EURUSD","state":"ORDER_STATE_FILLED",
			 "time":"2024-03-10T08:00:00Z","doneTime":"2024-03-10T08:00:01Z"}
		]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	start := time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	orders, err := c.HistoryOrders(context.Background(), "acc-1", start, end, 20, 20)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "P1", orders[0].PositionID)
	assert.True(t, orders[0].Time.Equal(time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)))

	assert.Equal(t, "test-token", gotToken)
	assert.Contains(t, gotPath, "/users/current/accounts/acc-1/history-orders/time/")
	assert.Equal(t, "offset=20&limit=20", gotQuery)
}

func TestDealsForPosition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/current/accounts/acc-1/deals/position/P1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"deals":[
			{"id":"d1","positionId":"P1","entryType":"DEAL_ENTRY_OUT","profit":10.5,
			 "symbol":"EURUSD","volume":0.1,"time":"2024-03-10T09:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	deals, err := newTestClient(srv).DealsForPosition(context.Background(), "acc-1", "P1")
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "d1", deals[0].ID)
	assert.EqualValues(t, "DEAL_ENTRY_OUT", deals[0].Entry)
	assert.Equal(t, 10.5, deals[0].Profit)
}

func TestErrorEnvelopeWithDiagnosticCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"server not found","status":404,"details":"E_SRV_NOT_FOUND"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).DealsForPosition(context.Background(), "acc-1", "P1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "E_SRV_NOT_FOUND", apiErr.Details)
	assert.Equal(t, "server not found", apiErr.Message)
}

func TestErrorEnvelopeWithValidationDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"validation failed","status":400,
			"details":[{"message":"limit must be positive","parameter":"limit"}]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).HistoryOrders(context.Background(), "acc-1", time.Now().Add(-time.Hour), time.Now(), 0, -1)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Details)
	require.Len(t, apiErr.ValidationDetails, 1)
	assert.Equal(t, "limit must be positive", apiErr.ValidationDetails[0].Message)
	assert.Equal(t, "limit", apiErr.ValidationDetails[0].Parameter)
}

func TestErrorEnvelopeNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Positions(context.Background(), "acc-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.Status)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestAccountInformation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/current/accounts/acc-1/account-information", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"broker":"Tradeview","currency":"USD","balance":1000.5,"equity":1010.25,"leverage":100}`))
	}))
	defer srv.Close()

	info, err := newTestClient(srv).AccountInformation(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Tradeview", info.Broker)
	assert.Equal(t, 1000.5, info.Balance)
	assert.Equal(t, 100, info.Leverage)
}
