package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	"github.com/fincore-dev/asset_ledger_app/internal/models"
)

type PgxFiAccountRepository struct {
	BaseRepository
}

// newPgxFiAccountRepository creates a new repository for FI master data.
func newPgxFiAccountRepository(pool *pgxpool.Pool) portsrepo.FiAccountRepositoryFacade {
	return &PgxFiAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiAccountRepositoryFacade = (*PgxFiAccountRepository)(nil)

// FindFiAccount retrieves the customer's counterparty FI account.
func (r *PgxFiAccountRepository) FindFiAccount(ctx context.Context, accountID, category, currencyCode string) (*domain.FiAccount, error) {
	query := `
		SELECT fi_account_id, account_id, category, currency_code, fi_code, fi_account_no,
		       created_at, created_by, last_updated_at, last_updated_by, version
		FROM fi_accounts
		WHERE account_id = $1 AND category = $2 AND currency_code = $3;
	`
	var m models.FiAccount
	err := r.q(ctx).QueryRow(ctx, query, accountID, category, currencyCode).Scan(
		&m.FiAccountID,
		&m.AccountID,
		&m.Category,
		&m.CurrencyCode,
		&m.FiCode,
		&m.FiAccountNo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find FI account for %s/%s/%s: %w", accountID, category, currencyCode, err)
	}
	fi := domain.FiAccount{
		FiAccountID:  m.FiAccountID,
		AccountID:    m.AccountID,
		Category:     m.Category,
		CurrencyCode: m.CurrencyCode,
		FiCode:       m.FiCode,
		FiAccountNo:  m.FiAccountNo,
	}
	fi.CreatedAt = m.CreatedAt
	fi.CreatedBy = m.CreatedBy
	fi.LastUpdatedAt = m.LastUpdatedAt
	fi.LastUpdatedBy = m.LastUpdatedBy
	fi.Version = m.Version
	return &fi, nil
}

// FindSelfFiAccount retrieves our own FI account for a category and currency.
func (r *PgxFiAccountRepository) FindSelfFiAccount(ctx context.Context, category, currencyCode string) (*domain.SelfFiAccount, error) {
	query := `
		SELECT self_fi_account_id, category, currency_code, fi_code, fi_account_no,
		       created_at, created_by, last_updated_at, last_updated_by, version
		FROM self_fi_accounts
		WHERE category = $1 AND currency_code = $2;
	`
	var m models.SelfFiAccount
	err := r.q(ctx).QueryRow(ctx, query, category, currencyCode).Scan(
		&m.SelfFiAccountID,
		&m.Category,
		&m.CurrencyCode,
		&m.FiCode,
		&m.FiAccountNo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find self FI account for %s/%s: %w", category, currencyCode, err)
	}
	self := domain.SelfFiAccount{
		SelfFiAccountID: m.SelfFiAccountID,
		Category:        m.Category,
		CurrencyCode:    m.CurrencyCode,
		FiCode:          m.FiCode,
		FiAccountNo:     m.FiAccountNo,
	}
	self.CreatedAt = m.CreatedAt
	self.CreatedBy = m.CreatedBy
	self.LastUpdatedAt = m.LastUpdatedAt
	self.LastUpdatedBy = m.LastUpdatedBy
	self.Version = m.Version
	return &self, nil
}
