package model

import (
	"encoding/json"
	"time"
)

// Attempt 一次口述回答：录音 + 转写 + AI 点评
// id 由前端在上传前生成；Score 为空表示尚未取得有效点评
// swagger:model
type Attempt struct {
	ID             string          `gorm:"primaryKey;type:varchar(64)" json:"id"`
	QuestionID     string          `gorm:"type:varchar(64);not null;index" json:"questionId"`
	AudioURL       string          `gorm:"type:varchar(512)" json:"audioUrl"`
	DurationString string          `gorm:"type:varchar(32)" json:"durationString"`
	Transcription  string          `gorm:"type:text" json:"transcription"`
	Score          *int            `json:"score"`
	Feedback       string          `gorm:"type:text" json:"feedback"`
	Pros           json.RawMessage `gorm:"type:json" json:"pros"`
	Cons           json.RawMessage `gorm:"type:json" json:"cons"`
	BetterAnswer   string          `gorm:"type:text" json:"betterAnswer"`
	CreatedAt      time.Time       `json:"createdAt"`

	Question *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Attempt) TableName() string {
	return "attempts"
}
