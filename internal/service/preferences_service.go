package service

import (
	"infinityqr-go/constant"
	"infinityqr-go/internal/model"
	"infinityqr-go/internal/storage"
)

// PreferencesService keeps the per-profile settings under their own storage
// key. An unreadable record silently falls back to the defaults.
type PreferencesService struct {
	store storage.Store
}

func NewPreferencesService(store storage.Store) *PreferencesService {
	return &PreferencesService{store: store}
}

func (p *PreferencesService) Get() model.Preferences {
	prefs := model.DefaultPreferences()
	p.store.Get(constant.UserPrefsKey, &prefs)
	return prefs
}

func (p *PreferencesService) Update(prefs model.Preferences) bool {
	return p.store.Set(constant.UserPrefsKey, prefs)
}
