package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trade_gateway/internal/models"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already registered")
)

// Store is the persistence port for registered accounts.
type Store interface {
	Insert(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	UpdateState(ctx context.Context, id string, state models.AccountState) error
	Delete(ctx context.Context, id string) error
}

// Registry owns the account lifecycle rows. It never talks to the terminal:
// deploy/undeploy are registry state flips only.
type Registry struct {
	store Store
}

func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

func (r *Registry) Register(ctx context.Context, account *models.Account) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("Registry.Register: %w", err)
		}
	}()

	if account.Login == "" {
		return errors.New("login is required")
	}
	if account.ServerName == "" {
		return errors.New("serverName is required")
	}

	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.State == "" {
		account.State = models.AccountStateCreated
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	return r.store.Insert(ctx, account)
}

func (r *Registry) Get(ctx context.Context, id string) (*models.Account, error) {
	account, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Registry.Get: %w", err)
	}
	return account, nil
}

func (r *Registry) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Registry.List: %w", err)
	}
	return accounts, nil
}

func (r *Registry) Deploy(ctx context.Context, id string) error {
	return r.setState(ctx, id, models.AccountStateDeployed)
}

func (r *Registry) Undeploy(ctx context.Context, id string) error {
	return r.setState(ctx, id, models.AccountStateUndeployed)
}

func (r *Registry) Remove(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("Registry.Remove: %w", err)
	}
	return nil
}

func (r *Registry) setState(ctx context.Context, id string, state models.AccountState) error {
	if err := r.store.UpdateState(ctx, id, state); err != nil {
		return fmt.Errorf("Registry.setState %s: %w", state, err)
	}
	return nil
}
