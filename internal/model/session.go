package model

import "time"

// Session 一次练习上下文：岗位 + 可选简历
// id 由前端生成并携带，创建接口是幂等的 upsert
// swagger:model
type Session struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null;comment:岗位名称" json:"title"`
	ResumeText string    `gorm:"type:text;comment:简历全文" json:"resumeText"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}
