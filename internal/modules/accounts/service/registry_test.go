package service

import (
	"context"
	"testing"

	"trade_gateway/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data map[string]*models.Account
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]*models.Account)}
}

func (s *memStore) Insert(_ context.Context, account *models.Account) error {
	if _, ok := s.data[account.ID]; ok {
		return ErrAccountExists
	}
	cp := *account
	s.data[account.ID] = &cp
	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*models.Account, error) {
	account, ok := s.data[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

func (s *memStore) List(_ context.Context) ([]models.Account, error) {
	out := make([]models.Account, 0, len(s.data))
	for _, account := range s.data {
		out = append(out, *account)
	}
	return out, nil
}

func (s *memStore) UpdateState(_ context.Context, id string, state models.AccountState) error {
	account, ok := s.data[id]
	if !ok {
		return ErrAccountNotFound
	}
	account.State = state
	return nil
}

func (s *memStore) Delete(_ context.Context, id string) error {
	if _, ok := s.data[id]; !ok {
		return ErrAccountNotFound
	}
	delete(s.data, id)
	return nil
}

func TestRegisterFillsDefaults(t *testing.T) {
	registry := NewRegistry(newMemStore())

	account := &models.Account{Login: "100200", ServerName: "Tradeview-Demo"}
	require.NoError(t, registry.Register(context.Background(), account))

	assert.NotEmpty(t, account.ID, "id is generated when absent")
	assert.Equal(t, models.AccountStateCreated, account.State)
	assert.False(t, account.CreatedAt.IsZero())

	got, err := registry.Get(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "100200", got.Login)
}

func TestRegisterValidation(t *testing.T) {
	registry := NewRegistry(newMemStore())

	err := registry.Register(context.Background(), &models.Account{ServerName: "srv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login is required")

	err = registry.Register(context.Background(), &models.Account{Login: "100200"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serverName is required")
}

func TestRegisterDuplicate(t *testing.T) {
	registry := NewRegistry(newMemStore())

	account := &models.Account{ID: "a1", Login: "100200", ServerName: "srv"}
	require.NoError(t, registry.Register(context.Background(), account))

	err := registry.Register(context.Background(), &models.Account{ID: "a1", Login: "100200", ServerName: "srv"})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestDeployUndeploy(t *testing.T) {
	registry := NewRegistry(newMemStore())
	ctx := context.Background()

	account := &models.Account{ID: "a1", Login: "100200", ServerName: "srv"}
	require.NoError(t, registry.Register(ctx, account))

	require.NoError(t, registry.Deploy(ctx, "a1"))
	got, err := registry.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStateDeployed, got.State)

	require.NoError(t, registry.Undeploy(ctx, "a1"))
	got, err = registry.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, models.AccountStateUndeployed, got.State)

	assert.ErrorIs(t, registry.Deploy(ctx, "missing"), ErrAccountNotFound)
}

func TestRemove(t *testing.T) {
	registry := NewRegistry(newMemStore())
	ctx := context.Background()

	require.NoError(t, registry.Register(ctx, &models.Account{ID: "a1", Login: "1", ServerName: "s"}))
	require.NoError(t, registry.Remove(ctx, "a1"))

	_, err := registry.Get(ctx, "a1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
