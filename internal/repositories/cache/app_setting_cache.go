// Package cache provides read-through caching decorators over the master data
// repositories. Master data changes rarely but is read on every balance
// calculation, so the hot reads are served from an in-process expiring LRU.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/fincore-dev/asset_ledger_app/internal/core/domain"
	portsrepo "github.com/fincore-dev/asset_ledger_app/internal/core/ports/repositories"
)

const appSettingCacheSize = 64

type CachedAppSettingRepository struct {
	inner portsrepo.AppSettingRepositoryFacade
	cache *expirable.LRU[string, domain.AppSetting]
}

// NewCachedAppSettingRepository decorates an app setting repository with a
// read-through cache. Entries expire after ttl and are invalidated on save.
func NewCachedAppSettingRepository(inner portsrepo.AppSettingRepositoryFacade, ttl time.Duration) *CachedAppSettingRepository {
	return &CachedAppSettingRepository{
		inner: inner,
		cache: expirable.NewLRU[string, domain.AppSetting](appSettingCacheSize, nil, ttl),
	}
}

var _ portsrepo.AppSettingRepositoryFacade = (*CachedAppSettingRepository)(nil)

func (r *CachedAppSettingRepository) FindAppSetting(ctx context.Context, settingID string) (*domain.AppSetting, error) {
	if setting, ok := r.cache.Get(settingID); ok {
		return &setting, nil
	}
	setting, err := r.inner.FindAppSetting(ctx, settingID)
	if err != nil {
		return nil, err
	}
	r.cache.Add(settingID, *setting)
	return setting, nil
}

func (r *CachedAppSettingRepository) SaveAppSetting(ctx context.Context, setting domain.AppSetting, actorID string) error {
	if err := r.inner.SaveAppSetting(ctx, setting, actorID); err != nil {
		return err
	}
	r.cache.Remove(setting.SettingID)
	return nil
}
