package Models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// StoredCollection is the local durable store: one row per entity kind,
// holding the whole collection as a JSON array. Every mutation rewrites
// the row, so the local copy is always a complete snapshot.
type StoredCollection struct {
	Key       string         `gorm:"primaryKey" json:"key"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func Connect(path string) error {
	connection, err := gorm.Open(sqlite.Open(path))
	if err != nil {
		return err
	}
	DB = connection
	return DB.AutoMigrate(&StoredCollection{})
}
