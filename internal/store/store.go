package store

import (
	"gorm.io/gorm"
)

// Store owns all access to the embedded database. Handlers never touch
// gorm directly; absence and unmet conditions are reported through
// nil/false returns rather than errors.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
