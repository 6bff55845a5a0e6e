package repo

import (
	"context"
	"encoding/json"
	"sync"

	"blockfix-backend/internal/model"
	"blockfix-backend/internal/store"
)

// SettingsRepo owns the singleton settings record. Defaults are
// materialized on first access; updates merge per top-level section.
type SettingsRepo struct {
	store store.Store
	mu    sync.Mutex
}

// NewSettingsRepo creates a settings repository over the given store.
func NewSettingsRepo(s store.Store) *SettingsRepo {
	return &SettingsRepo{store: s}
}

// Get returns the current settings, falling back to defaults when the
// record is absent or unreadable.
func (r *SettingsRepo) Get(ctx context.Context) (model.Settings, error) {
	data, err := r.store.Load(ctx, CollectionSettings)
	if err != nil {
		return model.Settings{}, err
	}
	if data == nil {
		return model.DefaultSettings(), nil
	}
	var settings model.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.DefaultSettings(), nil
	}
	return settings, nil
}

// Seed persists the defaults if no settings record exists yet.
func (r *SettingsRepo) Seed(ctx context.Context) error {
	return r.store.EnsureSeeded(ctx, CollectionSettings, seedJSON(model.DefaultSettings()))
}

// Update merges the non-nil sections of patch into the stored settings
// and returns the result. Sections are replaced wholesale, not deep-merged.
func (r *SettingsRepo) Update(ctx context.Context, patch model.SettingsPatch) (model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, err := r.Get(ctx)
	if err != nil {
		return model.Settings{}, err
	}
	if patch.Company != nil {
		settings.Company = *patch.Company
	}
	if patch.Notifications != nil {
		settings.Notifications = *patch.Notifications
	}
	if patch.Appearance != nil {
		settings.Appearance = *patch.Appearance
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return model.Settings{}, err
	}
	if err := r.store.Save(ctx, CollectionSettings, data); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}
