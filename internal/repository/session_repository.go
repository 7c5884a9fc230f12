package repository

import (
	"ai_interview_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Upsert 按主键插入或更新：title 总是覆盖，resume_text 仅在新值非空时覆盖
func (r *SessionRepository) Upsert(session *model.Session) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"title":       session.Title,
			"resume_text": gorm.Expr("CASE WHEN ? != '' THEN ? ELSE sessions.resume_text END", session.ResumeText, session.ResumeText),
		}),
	}).Create(session).Error
}

func (r *SessionRepository) ListAll() ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) FindByID(id string) (*model.Session, error) {
	var session model.Session
	if err := r.DB.First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
