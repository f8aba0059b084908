package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fincore-dev/asset_ledger_app/internal/apperrors"
	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
	"github.com/fincore-dev/asset_ledger_app/internal/models"
	"github.com/fincore-dev/asset_ledger_app/internal/utils/stamping"
)

type PgxAppSettingRepository struct {
	BaseRepository
	clock func() time.Time
}

// newPgxAppSettingRepository creates a new repository for persisted app settings.
func newPgxAppSettingRepository(pool *pgxpool.Pool) portsrepo.AppSettingRepositoryFacade {
	return &PgxAppSettingRepository{BaseRepository: BaseRepository{Pool: pool}, clock: time.Now}
}

var _ portsrepo.AppSettingRepositoryFacade = (*PgxAppSettingRepository)(nil)

// FindAppSetting retrieves a setting by its key.
func (r *PgxAppSettingRepository) FindAppSetting(ctx context.Context, settingID string) (*domain.AppSetting, error) {
	query := `
		SELECT setting_id, category, value, created_at, created_by, last_updated_at, last_updated_by, version
		FROM app_settings
		WHERE setting_id = $1;
	`
	var m models.AppSetting
	err := r.q(ctx).QueryRow(ctx, query, settingID).Scan(
		&m.SettingID,
		&m.Category,
		&m.Value,
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
		return nil, fmt.Errorf("failed to find app setting %s: %w", settingID, err)
	}
	setting := domain.AppSetting{
		SettingID: m.SettingID,
		Category:  m.Category,
		Value:     m.Value,
	}
	setting.CreatedAt = m.CreatedAt
	setting.CreatedBy = m.CreatedBy
	setting.LastUpdatedAt = m.LastUpdatedAt
	setting.LastUpdatedBy = m.LastUpdatedBy
	setting.Version = m.Version
	return &setting, nil
}

// SaveAppSetting upserts a setting value.
func (r *PgxAppSettingRepository) SaveAppSetting(ctx context.Context, setting domain.AppSetting, actorID string) error {
	audit := stamping.ForCreate(setting.AuditFields, actorID, r.clock())
	query := `
		INSERT INTO app_settings (setting_id, category, value, created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (setting_id) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by,
			version = app_settings.version + 1;
	`
	_, err := r.q(ctx).Exec(ctx, query,
		setting.SettingID,
		setting.Category,
		setting.Value,
		audit.CreatedAt,
		audit.CreatedBy,
		audit.LastUpdatedAt,
		audit.LastUpdatedBy,
		audit.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to save app setting %s: %w", setting.SettingID, err)
	}
	return nil
}
