package repository

import (
	"ai_interview_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// Create 会话不存在时由外键约束报错
func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// CreateBatch 单事务批量落库，避免生成结果写一半
func (r *QuestionRepository) CreateBatch(questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// Delete 不存在的 id 视为成功，依赖级联删除回收 attempts
func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Delete(&model.Question{}, "id = ?", id).Error
}

func (r *QuestionRepository) ListBySession(sessionID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("session_id = ?", sessionID).Order("created_at ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	if err := r.DB.First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}
