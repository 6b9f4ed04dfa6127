package store

import (
	"errors"

	"gorm.io/gorm"

	"autoservice-backend/internal/models"
)

// UpsertUserByPhone returns the user registered under phone, creating one
// if needed. An existing row wins: name and email passed here are only
// applied on first creation.
func (s *Store) UpsertUserByPhone(name, phone, email string) (models.User, error) {
	var user models.User
	err := s.db.Where("phone = ?", phone).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	user = models.User{Name: name, Phone: phone, Email: email}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Store) UpdateUserProfile(id uint, name, email string) (bool, error) {
	result := s.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "email": email})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
