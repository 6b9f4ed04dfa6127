package store

import (
	"errors"

	"gorm.io/gorm"

	"autoservice-backend/internal/models"
)

func (s *Store) ListParts() ([]models.Part, error) {
	var parts []models.Part
	if err := s.db.Order("id ASC").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// GetPart returns nil without an error when the id is unknown.
func (s *Store) GetPart(id int) (*models.Part, error) {
	var part models.Part
	err := s.db.First(&part, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &part, nil
}
