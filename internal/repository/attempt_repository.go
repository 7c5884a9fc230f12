package repository

import (
	"ai_interview_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) ListByQuestion(questionID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("question_id = ?", questionID).Order("created_at ASC").Find(&attempts).Error
	return attempts, err
}
