package Store

import (
	"errors"

	"LogiTrack/Models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocalStore wraps the SQLite collection table. A missing key reads as an
// empty collection, never as an error.
type LocalStore struct {
	db *gorm.DB
}

func NewLocalStore(db *gorm.DB) *LocalStore {
	return &LocalStore{db: db}
}

func (s *LocalStore) Read(key string) ([]byte, error) {
	var record Models.StoredCollection
	err := s.db.First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(record.Data), nil
}

func (s *LocalStore) Write(key string, data []byte) error {
	record := Models.StoredCollection{Key: key, Data: datatypes.JSON(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record).Error
}

// Exists reports whether the key has ever been written.
func (s *LocalStore) Exists(key string) (bool, error) {
	var count int64
	err := s.db.Model(&Models.StoredCollection{}).Where("key = ?", key).Count(&count).Error
	return count > 0, err
}
