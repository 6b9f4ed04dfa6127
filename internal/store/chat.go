package store

import (
	"autoservice-backend/internal/models"
)

const defaultHistoryLimit = 50

// SaveChatMessage appends a message. userID is nil for guests.
func (s *Store) SaveChatMessage(userID *uint, userName, message string, isSupport bool) (uint, error) {
	msg := models.ChatMessage{
		UserID:    userID,
		UserName:  userName,
		Message:   message,
		IsSupport: isSupport,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return 0, err
	}
	return msg.ID, nil
}

func (s *Store) ListChatHistory(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	var messages []models.ChatMessage
	err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *Store) CountUnreadSupportMessages(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.ChatMessage{}).
		Where("user_id = ? AND is_support = ? AND is_read = ?", userID, true, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkSupportMessagesRead flips unread support messages to read. The
// transition is one-way, already-read rows are left alone.
func (s *Store) MarkSupportMessagesRead(userID uint) (int64, error) {
	result := s.db.Model(&models.ChatMessage{}).
		Where("user_id = ? AND is_support = ? AND is_read = ?", userID, true, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
