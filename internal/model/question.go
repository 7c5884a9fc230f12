package model

import "time"

// Question 面试题，归属某个 Session，删除 Session 时级联删除
// swagger:model
type Question struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	SessionID string    `gorm:"type:varchar(64);not null;index" json:"sessionId"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Type      string    `gorm:"type:varchar(64);not null;comment:题目类别，如硬技能/软技能" json:"type"`
	CreatedAt time.Time `json:"createdAt"`

	Session *Session `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
