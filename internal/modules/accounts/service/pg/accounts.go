package pg

import (
	"context"
	"fmt"

	"trade_gateway/internal/models"
	"trade_gateway/internal/modules/accounts/service"
	"trade_gateway/pkg/db"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

const uniqueViolation = "23505"

// Accounts implements the registry store on postgres.
type Accounts struct {
	db *db.PgTxManager
}

func NewAccounts(db *db.PgTxManager) *Accounts {
	return &Accounts{db: db}
}

func (a *Accounts) Insert(ctx context.Context, account *models.Account) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.Accounts.Insert: %w", err)
		}
	}()

	var metadata []byte
	metadata, err = sonic.Marshal(account.Metadata)
	if err != nil {
		return errors.Wrap(err, "marshal metadata")
	}

	return a.db.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctxTx,
			`INSERT INTO accounts (id, login, server_name, state, metadata, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			account.ID, account.Login, account.ServerName, account.State, metadata, account.CreatedAt,
		)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return service.ErrAccountExists
		}
		return err
	})
}

func (a *Accounts) GetByID(ctx context.Context, id string) (account *models.Account, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.Accounts.GetByID: %w", err)
		}
	}()

	err = a.db.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctxTx,
			`SELECT id, login, server_name, state, metadata, created_at
			 FROM accounts WHERE id = $1`,
			id,
		)
		account, err = scanAccount(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (a *Accounts) List(ctx context.Context) (accounts []models.Account, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.Accounts.List: %w", err)
		}
	}()

	err = a.db.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctxTx,
			`SELECT id, login, server_name, state, metadata, created_at
			 FROM accounts ORDER BY created_at`,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			account, err := scanAccount(rows)
			if err != nil {
				return err
			}
			accounts = append(accounts, *account)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (a *Accounts) UpdateState(ctx context.Context, id string, state models.AccountState) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.Accounts.UpdateState: %w", err)
		}
	}()

	return a.db.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctxTx, `UPDATE accounts SET state = $2 WHERE id = $1`, id, state)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return service.ErrAccountNotFound
		}
		return nil
	})
}

func (a *Accounts) Delete(ctx context.Context, id string) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.Accounts.Delete: %w", err)
		}
	}()

	return a.db.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctxTx, `DELETE FROM accounts WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return service.ErrAccountNotFound
		}
		return nil
	})
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var (
		account  models.Account
		metadata []byte
	)
	err := row.Scan(
		&account.ID, &account.Login, &account.ServerName,
		&account.State, &metadata, &account.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, service.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := sonic.Unmarshal(metadata, &account.Metadata); err != nil {
			return nil, errors.Wrap(err, "unmarshal metadata")
		}
	}
	return &account, nil
}
