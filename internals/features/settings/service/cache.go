package service

import (
	"sync"

	"gorm.io/gorm"

	"bimbelku_backend/internals/features/settings/model"
)

// SettingCache menyimpan seluruh tabel settings di memori.
// Muat sekali saat dibaca, di-invalidate setiap ada tulisan.
type SettingCache struct {
	mu     sync.RWMutex
	values map[string]string
	loaded bool
}

func NewSettingCache() *SettingCache {
	return &SettingCache{}
}

// All mengembalikan salinan semua setting, memuat dari DB kalau cache kosong.
func (sc *SettingCache) All(db *gorm.DB) (map[string]string, error) {
	sc.mu.RLock()
	if sc.loaded {
		out := copyMap(sc.values)
		sc.mu.RUnlock()
		return out, nil
	}
	sc.mu.RUnlock()

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.loaded {
		if err := sc.loadLocked(db); err != nil {
			return nil, err
		}
	}
	return copyMap(sc.values), nil
}

// Get membaca satu key. ok=false kalau key tidak ada.
func (sc *SettingCache) Get(db *gorm.DB, key string) (string, bool, error) {
	all, err := sc.All(db)
	if err != nil {
		return "", false, err
	}
	v, ok := all[key]
	return v, ok, nil
}

// Invalidate membuang isi cache. Dipanggil setiap upsert/delete/import.
func (sc *SettingCache) Invalidate() {
	sc.mu.Lock()
	sc.values = nil
	sc.loaded = false
	sc.mu.Unlock()
}

func (sc *SettingCache) loadLocked(db *gorm.DB) error {
	var settings []model.SettingModel
	if err := db.Find(&settings).Error; err != nil {
		return err
	}
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		values[s.SettingKey] = s.SettingValue
	}
	sc.values = values
	sc.loaded = true
	return nil
}

func copyMap(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
